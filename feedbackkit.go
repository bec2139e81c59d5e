// Package feedbackkit is a typed Go client for the FeedbackKit
// feedback-collection REST API.
//
// The primary entry point is an explicit client handle:
//
//	client, err := feedbackkit.New(feedbackkit.Config{APIKey: "your-api-key"})
//	if err != nil {
//		return err
//	}
//	items, err := client.Feedback.List(ctx, models.ListFeedbackOptions{})
//
// Applications that want configure-once semantics can use the package-level
// Configure and Shared helpers instead of threading the handle through.
package feedbackkit

import (
	"errors"
	"sync"

	"github.com/swiftlydeveloped/feedbackkit-go/internal/transport"
	"github.com/swiftlydeveloped/feedbackkit-go/pkg/logger"
	"github.com/swiftlydeveloped/feedbackkit-go/storage"
)

// Client is a handle on the FeedbackKit API. Construct it once at
// application start and pass it to every consumer.
type Client struct {
	cfg   Config
	http  *transport.Client
	store *storage.Store

	// Resource APIs. All share one transport.
	Feedback *FeedbackAPI
	Votes    *VotesAPI
	Comments *CommentsAPI
	Users    *UsersAPI
	Events   *EventsAPI
}

// New builds a Client from the given configuration.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	if cfg.Debug {
		logger.Init("debug")
	}

	httpClient := transport.New(cfg.APIKey, cfg.APIURL(), cfg.Timeout, cfg.Debug)
	if cfg.UserID != "" {
		httpClient.SetUserID(cfg.UserID)
	}

	var store *storage.Store
	if cfg.StoragePath != "" {
		var err error
		store, err = storage.Open(cfg.StoragePath)
		if err != nil {
			return nil, err
		}
	}

	c := &Client{
		cfg:   cfg,
		http:  httpClient,
		store: store,
	}
	c.Feedback = &FeedbackAPI{http: httpClient}
	c.Votes = &VotesAPI{http: httpClient}
	c.Comments = &CommentsAPI{http: httpClient}
	c.Users = &UsersAPI{http: httpClient}
	c.Events = &EventsAPI{http: httpClient}
	return c, nil
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config { return c.cfg }

// Storage returns the persistent identity store, or nil when the client was
// built without one.
func (c *Client) Storage() *storage.Store { return c.store }

// UserID returns the active user id, or "" when anonymous.
func (c *Client) UserID() string { return c.http.UserID() }

// SetUserID updates the active user id in memory only.
func (c *Client) SetUserID(id string) { c.http.SetUserID(id) }

// SetUserIDAndPersist updates the active user id and writes it to the
// persistent store when one is configured.
func (c *Client) SetUserIDAndPersist(id string) error {
	c.http.SetUserID(id)
	if c.store == nil {
		return nil
	}
	return c.store.SetUserID(id)
}

// LoadUserIDFromStorage restores a previously persisted user id, if any.
func (c *Client) LoadUserIDFromStorage() error {
	if c.store == nil {
		return nil
	}
	id, err := c.store.UserID()
	if err != nil {
		return err
	}
	if id != "" {
		c.http.SetUserID(id)
	}
	return nil
}

// Logout clears the active user id and wipes all persisted identity state.
func (c *Client) Logout() error {
	c.http.SetUserID("")
	if c.store == nil {
		return nil
	}
	return c.store.Clear()
}

// Close releases resources held by the client.
func (c *Client) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

// --- Shared instance ---

// ErrNotConfigured is returned by Shared before Configure has been called.
// This signals a startup-ordering bug, not a recoverable runtime condition.
var ErrNotConfigured = errors.New("feedbackkit: not configured, call Configure first")

var (
	sharedMu sync.Mutex
	shared   *Client
)

// Configure builds the shared client. Calling it again is a no-op that
// returns the existing instance.
func Configure(cfg Config) (*Client, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared != nil {
		return shared, nil
	}
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	shared = c
	return c, nil
}

// Shared returns the client built by Configure.
func Shared() (*Client, error) {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		return nil, ErrNotConfigured
	}
	return shared, nil
}

// IsConfigured reports whether Configure has been called.
func IsConfigured() bool {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	return shared != nil
}

// Reset discards the shared instance. Primarily for tests.
func Reset() {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared != nil {
		shared.Close()
	}
	shared = nil
}
