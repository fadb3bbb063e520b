package gauth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Authorize returns the stored token, or runs the console consent flow when
// none exists: it prints the consent URL to out, reads the code from in,
// exchanges it and saves the result.
func Authorize(
	ctx context.Context,
	cfg *oauth2.Config,
	store TokenStore,
	in io.Reader,
	out io.Writer,
) (*oauth2.Token, error) {

	tok, err := store.Load(ctx)
	if err == nil {
		return tok, nil
	}
	if !errors.Is(err, ErrNoToken) {
		return nil, err
	}

	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Fprintf(out, "Authorize this app by visiting this url:\n%s\nEnter the code from that page here: ", authURL)

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.New("empty authorization code")
	}

	tok, err = cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}

	if err := store.Save(ctx, tok); err != nil {
		return nil, err
	}
	return tok, nil
}

// TokenSource builds the shared authorization context. Refreshed tokens are
// written back to store. Safe for concurrent use.
func TokenSource(
	ctx context.Context,
	cfg *oauth2.Config,
	tok *oauth2.Token,
	store TokenStore,
	log *zap.Logger,
) oauth2.TokenSource {
	return oauth2.ReuseTokenSource(tok, &persistingSource{
		ctx:   ctx,
		base:  cfg.TokenSource(ctx, tok),
		store: store,
		log:   log,
		last:  tok.AccessToken,
	})
}

type persistingSource struct {
	ctx   context.Context
	base  oauth2.TokenSource
	store TokenStore
	log   *zap.Logger

	mu   sync.Mutex
	last string
}

func (s *persistingSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if tok.AccessToken != s.last {
		s.last = tok.AccessToken
		if err := s.store.Save(s.ctx, tok); err != nil {
			s.log.Warn("failed to persist refreshed token", zap.Error(err))
		} else {
			s.log.Info("oauth token refreshed", zap.Time("expiry", tok.Expiry))
		}
	}
	return tok, nil
}
