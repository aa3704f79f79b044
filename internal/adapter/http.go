package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-ledger/internal/config"
	"github.com/MKhiriev/go-ledger/internal/logger"
	"github.com/MKhiriev/go-ledger/internal/utils"
	"github.com/MKhiriev/go-ledger/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathLogin     = "/login"
	pathRegister  = "/register"
	pathAccount   = "/account"
	pathUsers     = "/users"
	pathTransfers = "/transfers"

	headerIdempotencyKey = "Idempotency-Key"
)

type httpLedgerAdapter struct {
	client *utils.HTTPClient
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPLedgerAdapter builds the HTTP implementation of [LedgerAdapter].
// Authenticated requests read the bearer token from tokens at send time, so a
// token set or cleared after construction is picked up by the next call.
//
// Returns an error if adapterCfg.HTTPAddress is empty or not a valid URL.
func NewHTTPLedgerAdapter(adapterCfg config.ClientAdapter, tokens TokenSource, logger *logger.Logger) (LedgerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient().WithBaseURL(baseURL, adapterCfg.RequestTimeout)

	return &httpLedgerAdapter{client: client, tokens: tokens, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpLedgerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(pathRegister)
	if err != nil {
		return fmt.Errorf("%w: register: %w", ErrRequestFailed, err)
	}

	return mapHTTPError(resp)
}

// Login POSTs the credentials to /login. The token is read from the JSON body
// and, if the body omits it, from the Authorization response header. A
// missing user ID is recovered from the token subject.
func (h *httpLedgerAdapter) Login(ctx context.Context, user models.User) (models.LoginResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post(pathLogin)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("%w: login: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	var loginResp models.LoginResponse
	if len(resp.Body()) > 0 {
		if err = json.Unmarshal(resp.Body(), &loginResp); err != nil {
			return models.LoginResponse{}, fmt.Errorf("%w: decode login response: %w", ErrMalformedResponse, err)
		}
	}

	if loginResp.Token == "" {
		token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.LoginResponse{}, fmt.Errorf("%w: login response carries no token", ErrMalformedResponse)
		}
		loginResp.Token = token
	}

	if loginResp.UserID == 0 {
		userID, err := utils.ParseUserIDFromJWT(loginResp.Token)
		if err != nil {
			h.logger.Warn().Err(err).Msg("login response has no user id and token subject is unreadable")
		} else {
			loginResp.UserID = userID
		}
	}

	if loginResp.Username == "" {
		loginResp.Username = user.Username
	}

	return loginResp, nil
}

func (h *httpLedgerAdapter) GetBalance(ctx context.Context) (models.AccountBalance, error) {
	var balance models.AccountBalance
	if err := h.getJSON(ctx, pathAccount, "get balance", &balance); err != nil {
		return models.AccountBalance{}, err
	}
	return balance, nil
}

func (h *httpLedgerAdapter) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	var users []models.UserSummary
	if err := h.getJSON(ctx, pathUsers, "list users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *httpLedgerAdapter) ListTransfers(ctx context.Context) ([]models.Transfer, error) {
	var transfers []models.Transfer
	if err := h.getJSON(ctx, pathTransfers, "list transfers", &transfers); err != nil {
		return nil, err
	}
	return transfers, nil
}

func (h *httpLedgerAdapter) GetTransfer(ctx context.Context, transferID int64) (models.Transfer, error) {
	var transfer models.Transfer
	path := pathTransfers + "/" + strconv.FormatInt(transferID, 10)
	if err := h.getJSON(ctx, path, "get transfer", &transfer); err != nil {
		return models.Transfer{}, err
	}
	return transfer, nil
}

func (h *httpLedgerAdapter) SubmitTransfer(ctx context.Context, req models.TransferRequest) (models.Transfer, error) {
	r := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req)
	if req.IdempotencyKey != "" {
		r.SetHeader(headerIdempotencyKey, req.IdempotencyKey)
	}

	resp, err := r.Post(pathTransfers)
	if err != nil {
		return models.Transfer{}, fmt.Errorf("%w: submit transfer: %w", ErrRequestFailed, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Transfer{}, err
	}

	var transfer models.Transfer
	if err = json.Unmarshal(resp.Body(), &transfer); err != nil {
		return models.Transfer{}, fmt.Errorf("%w: decode transfer: %w", ErrMalformedResponse, err)
	}
	return transfer, nil
}

func (h *httpLedgerAdapter) getJSON(ctx context.Context, path, op string, dst any) error {
	resp, err := h.authedRequest(ctx).Get(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrRequestFailed, op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), dst); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformedResponse, op, err)
	}
	return nil
}

func (h *httpLedgerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token, ok := h.tokens.Get(); ok {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
