// Package session owns the authenticated binding to one ERP server, database
// and user, and mirrors its non-secret part into a durable store.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/device-management-toolkit/storefront/internal/entity"
	"github.com/device-management-toolkit/storefront/internal/jsonrpc"
	"github.com/device-management-toolkit/storefront/pkg/kvstore"
	"github.com/device-management-toolkit/storefront/pkg/logger"
)

const (
	// StorageKey is where the session record lives.
	StorageKey = "odoo_session"
	// AuthenticatePath is the login endpoint relative to the server address.
	AuthenticatePath = "/web/session/authenticate"
)

// Transport sends one envelope. *jsonrpc.Client implements it.
type Transport interface {
	Call(ctx context.Context, url string, params interface{}, sessionToken string) (*jsonrpc.Response, error)
}

type loginParams struct {
	ServerAddress string `json:"-" validate:"required,url"`
	DB            string `json:"db" validate:"required"`
	Login         string `json:"login" validate:"required"`
	Password      string `json:"password" validate:"required"`
}

type authResult struct {
	UID       *int             `validate:"required,gt=0"`
	SessionID entity.OptString `validate:"-"`
}

// Manager -.
type Manager struct {
	mu        sync.RWMutex
	session   entity.Session
	transport Transport
	store     kvstore.Store
	validate  *validator.Validate
	log       logger.Interface
}

// New -.
func New(transport Transport, store kvstore.Store, log logger.Interface) *Manager {
	return &Manager{
		transport: transport,
		store:     store,
		validate:  validator.New(),
		log:       log,
	}
}

// Authenticate logs in and replaces any prior session. On failure the
// manager is left unauthenticated and any persisted record is erased. If the
// login succeeds but the record cannot be written, the session is usable in
// memory and the storage error is returned alongside the info.
func (m *Manager) Authenticate(ctx context.Context, serverAddress, databaseName, username, password string) (entity.SessionInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session.Reset()

	params := loginParams{
		ServerAddress: serverAddress,
		DB:            databaseName,
		Login:         username,
		Password:      password,
	}

	result, err := m.login(ctx, params)
	if err != nil {
		m.log.Warn("session - authenticate %s@%s: %v", username, serverAddress, err)

		if delErr := kvstore.Delete(m.store, StorageKey); delErr != nil {
			m.log.Error(delErr, "session - authenticate - erase stale record")
		}

		return entity.SessionInfo{}, err
	}

	uid := *result.UID

	m.session = entity.Session{
		ServerAddress: serverAddress,
		DatabaseName:  databaseName,
		UserID:        &uid,
		SessionToken:  string(result.SessionID),
	}

	info := m.infoLocked()

	m.log.Info("session - authenticated uid=%d on %s db=%s", uid, serverAddress, databaseName)

	if err := kvstore.PutJSON(m.store, StorageKey, entity.SessionRecord(info)); err != nil {
		return info, fmt.Errorf("session - persist: %w", err)
	}

	return info, nil
}

func (m *Manager) login(ctx context.Context, params loginParams) (*authResult, error) {
	if err := m.validate.Struct(params); err != nil {
		return nil, &AuthError{Reason: ReasonInvalidInput, Err: err}
	}

	resp, err := m.transport.Call(ctx, params.ServerAddress+AuthenticatePath, params, "")
	if err != nil {
		if errors.Is(err, jsonrpc.ErrInvalidResponse) || errors.Is(err, jsonrpc.ErrIDMismatch) {
			return nil, &AuthError{Reason: ReasonMalformedResponse, Err: err}
		}

		return nil, &AuthError{Reason: ReasonUnreachable, Err: err}
	}

	if resp.Error != nil {
		return nil, &AuthError{Reason: resp.Error.Text()}
	}

	var raw struct {
		UID       json.RawMessage  `json:"uid"`
		SessionID entity.OptString `json:"session_id"`
	}

	if err := json.Unmarshal(resp.Result, &raw); err != nil {
		return nil, &AuthError{Reason: ReasonMalformedResponse, Err: err}
	}

	result := &authResult{SessionID: raw.SessionID}

	// uid is false when the credentials are rejected
	var uid int
	if json.Unmarshal(raw.UID, &uid) == nil {
		result.UID = &uid
	}

	if err := m.validate.Struct(result); err != nil {
		return nil, &AuthError{Reason: ReasonInvalidCredentials}
	}

	return result, nil
}

// RestoreSession reloads the persisted record, without a token. It does not
// contact the server. A record that cannot be decoded is erased and reported
// as missing.
func (m *Manager) RestoreSession(_ context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var rec entity.SessionRecord

	found, err := kvstore.GetJSON(m.store, StorageKey, &rec)

	var decodeErr *kvstore.DecodeError
	if errors.As(err, &decodeErr) {
		m.log.Warn("session - restore: discarding unreadable record: %v", err)

		return false, kvstore.Delete(m.store, StorageKey)
	}

	if err != nil {
		return false, fmt.Errorf("session - restore: %w", err)
	}

	if !found {
		return false, nil
	}

	if rec.UserID <= 0 {
		m.log.Warn("session - restore: discarding record without a user id")

		return false, kvstore.Delete(m.store, StorageKey)
	}

	uid := rec.UserID

	m.session = entity.Session{
		ServerAddress: rec.ServerAddress,
		DatabaseName:  rec.DatabaseName,
		UserID:        &uid,
	}

	return true, nil
}

// IsAuthenticated -.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.session.IsAuthenticated()
}

// SessionInfo returns the current session and true, or false when not authenticated.
func (m *Manager) SessionInfo() (entity.SessionInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.session.IsAuthenticated() {
		return entity.SessionInfo{}, false
	}

	return m.infoLocked(), true
}

func (m *Manager) infoLocked() entity.SessionInfo {
	return entity.SessionInfo{
		UserID:        *m.session.UserID,
		ServerAddress: m.session.ServerAddress,
		DatabaseName:  m.session.DatabaseName,
	}
}

// Logout clears the session and its record. Calling it twice is fine.
func (m *Manager) Logout(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.session.Reset()

	if err := kvstore.Delete(m.store, StorageKey); err != nil {
		return fmt.Errorf("session - logout: %w", err)
	}

	return nil
}

// ServerAddress -.
func (m *Manager) ServerAddress() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.session.ServerAddress
}

// Token returns the explicit session token, empty when the server relies on cookies.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.session.SessionToken
}
