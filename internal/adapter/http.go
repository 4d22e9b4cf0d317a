package adapter

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/ErikSvanes/flashcards/internal/config"
	"github.com/ErikSvanes/flashcards/internal/logger"
	"github.com/ErikSvanes/flashcards/internal/utils"
	"github.com/ErikSvanes/flashcards/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathRegister = "/api/user/register"
	pathLogin    = "/api/user/login"
	pathSets     = "/api/sets"
	pathSet      = "/api/sets/{setID}"
	pathCard     = "/api/sets/{setID}/cards/{cardID}"
	pathFolders  = "/api/folders"
	pathFolder   = "/api/folders/{folderID}"
	pathVersion  = "/api/version/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter] rooted at adapterCfg.HTTPAddress.
//
// Returns an error if adapterCfg.HTTPAddress is empty.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if strings.TrimSpace(adapterCfg.HTTPAddress) == "" {
		return nil, fmt.Errorf("invalid adapter http address: empty address")
	}

	client := utils.NewHTTPClient(strings.TrimSpace(adapterCfg.HTTPAddress), adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

// SetToken implements [AuthAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [AuthAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [AuthAdapter]. It POSTs the credentials to
// /api/user/register and stores the token from the Authorization response
// header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, pathRegister, user)
}

// Login implements [AuthAdapter]. It POSTs the credentials to /api/user/login
// and stores the token from the Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, pathLogin, user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: user.Login, Password: user.Password}).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	signed, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}
	token, err := utils.ParseUnverifiedToken(signed)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse token claims: %w", path, err)
	}

	h.SetToken(signed)
	return token, nil
}

// UpsertSet implements [RemoteStore]. Only the fields present in fields are
// sent, so an absent field keeps its remote value.
func (h *httpServerAdapter) UpsertSet(ctx context.Context, setID string, fields models.SetUpdate) error {
	return h.write(ctx, resty.MethodPut, pathSet, map[string]string{"setID": setID}, fields)
}

// UpsertCard implements [RemoteStore].
func (h *httpServerAdapter) UpsertCard(ctx context.Context, setID string, card models.Card) error {
	return h.write(ctx, resty.MethodPut, pathCard, map[string]string{"setID": setID, "cardID": card.ID}, card)
}

// UpsertFolder implements [RemoteStore].
func (h *httpServerAdapter) UpsertFolder(ctx context.Context, folderID string, fields models.FolderUpdate) error {
	return h.write(ctx, resty.MethodPut, pathFolder, map[string]string{"folderID": folderID}, fields)
}

func (h *httpServerAdapter) DeleteSet(ctx context.Context, setID string) error {
	return h.write(ctx, resty.MethodDelete, pathSet, map[string]string{"setID": setID}, nil)
}

func (h *httpServerAdapter) DeleteCard(ctx context.Context, setID, cardID string) error {
	return h.write(ctx, resty.MethodDelete, pathCard, map[string]string{"setID": setID, "cardID": cardID}, nil)
}

func (h *httpServerAdapter) DeleteFolder(ctx context.Context, folderID string) error {
	return h.write(ctx, resty.MethodDelete, pathFolder, map[string]string{"folderID": folderID}, nil)
}

// FetchAllSets implements [RemoteStore]. The backend scopes the listing to
// the token owner, so ownerID must be the token subject.
func (h *httpServerAdapter) FetchAllSets(ctx context.Context, ownerID string) ([]models.Set, error) {
	var sets []models.Set
	if err := h.fetch(ctx, pathSets, ownerID, &sets); err != nil {
		return nil, err
	}
	for i := range sets {
		if sets[i].Cards == nil {
			sets[i].Cards = []models.Card{}
		}
	}
	return sets, nil
}

// FetchAllFolders implements [RemoteStore].
func (h *httpServerAdapter) FetchAllFolders(ctx context.Context, ownerID string) ([]models.Folder, error) {
	var folders []models.Folder
	if err := h.fetch(ctx, pathFolders, ownerID, &folders); err != nil {
		return nil, err
	}
	if folders == nil {
		folders = []models.Folder{}
	}
	return folders, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var info struct {
		Version string `json:"version"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get(pathVersion)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return info.Version, nil
}

func (h *httpServerAdapter) write(ctx context.Context, method, path string, params map[string]string, body any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	req.SetPathParams(params)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*httpServerAdapter.write").
			Str("method", method).
			Str("path", path).
			Msg("request failed")
		return fmt.Errorf("%s %s request: %w", method, path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) fetch(ctx context.Context, path, ownerID string, result any) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}
	if err := h.checkOwner(ownerID); err != nil {
		return err
	}

	resp, err := req.SetResult(result).Get(path)
	if err != nil {
		return fmt.Errorf("GET %s request: %w", path, err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) checkOwner(ownerID string) error {
	token, err := utils.ParseUnverifiedToken(h.Token())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if token.UserID != ownerID {
		return ErrOwnerMismatch
	}
	return nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}
