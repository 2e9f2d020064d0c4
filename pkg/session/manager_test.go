package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hugohenrick/gestao-varejo/internal/domain/user"
	"github.com/hugohenrick/gestao-varejo/pkg/auth"
	"github.com/hugohenrick/gestao-varejo/pkg/domain"
	"github.com/hugohenrick/gestao-varejo/pkg/logger"
)

type fakeVerifier struct {
	passwords map[string]string
	err       error
}

func (v fakeVerifier) VerifyLogin(_ context.Context, username, password string) (bool, error) {
	if v.err != nil {
		return false, v.err
	}
	return v.passwords[username] == password, nil
}

type fakeUsers map[string]*user.User

func (f fakeUsers) FindByUsername(_ context.Context, username string) (*user.User, error) {
	if u, ok := f[username]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, user.ErrUserNotFound
}

type countRecorder map[string]int

func (c countRecorder) LoginAttempt(outcome string) { c[outcome]++ }

func newTestManager(t *testing.T, users fakeUsers, verifier fakeVerifier, rec countRecorder) *Manager {
	t.Helper()
	tokens, err := auth.NewJWTService("segredo-de-teste", time.Hour)
	if err != nil {
		t.Fatalf("erro ao criar JWTService: %v", err)
	}
	return NewManager(Config{
		Verifier:        verifier,
		Users:           users,
		Tokens:          tokens,
		Store:           NewMemoryStore(),
		Recorder:        rec,
		RefreshInterval: 5 * time.Minute,
		Logger:          logger.NewNop(),
	})
}

func TestManagerLogin(t *testing.T) {
	ctx := context.Background()
	tenantID := "T1"
	users := fakeUsers{"ana": {ID: "U1", Username: "ana", TenantID: &tenantID}}
	verifier := fakeVerifier{passwords: map[string]string{"ana": "segredo"}}

	t.Run("login abre sessão com os dados do usuário", func(t *testing.T) {
		rec := countRecorder{}
		m := newTestManager(t, users, verifier, rec)

		sess, token, err := m.Login(ctx, "ana", "segredo")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if token == "" || sess.ID == "" {
			t.Fatal("token e sessão deveriam ser preenchidos")
		}

		actor, err := m.ResolveActor(ctx, token)
		if err != nil {
			t.Fatalf("erro ao resolver sessão: %v", err)
		}
		if actor.UserID != "U1" || actor.Username != "ana" || actor.TenantID != "T1" || actor.IsAdmin {
			t.Errorf("ator inesperado: %+v", actor)
		}
		if rec["success"] != 1 {
			t.Errorf("métrica de sucesso = %d, esperado 1", rec["success"])
		}
	})

	t.Run("senha errada não é erro de infraestrutura", func(t *testing.T) {
		rec := countRecorder{}
		m := newTestManager(t, users, verifier, rec)

		_, _, err := m.Login(ctx, "ana", "errada")
		if !errors.Is(err, ErrInvalidCredentials) || !errors.Is(err, domain.ErrUnauthenticated) {
			t.Errorf("esperava ErrInvalidCredentials, obtido %v", err)
		}
		if rec["invalid_credentials"] != 1 {
			t.Errorf("métrica de credencial inválida = %d", rec["invalid_credentials"])
		}
	})

	t.Run("falha do banco é propagada", func(t *testing.T) {
		m := newTestManager(t, users, fakeVerifier{err: auth.ErrCredentialStoreUnavailable}, countRecorder{})

		_, _, err := m.Login(ctx, "ana", "segredo")
		if !errors.Is(err, auth.ErrCredentialStoreUnavailable) || errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("esperava ErrCredentialStoreUnavailable, obtido %v", err)
		}
	})
}

func TestManagerLogout(t *testing.T) {
	ctx := context.Background()
	users := fakeUsers{"root": {ID: "A1", Username: "root", IsAdmin: true}}
	m := newTestManager(t, users, fakeVerifier{passwords: map[string]string{"root": "admin123"}}, countRecorder{})

	_, token, err := m.Login(ctx, "root", "admin123")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if err := m.Logout(ctx, token); err != nil {
		t.Fatalf("erro ao encerrar sessão: %v", err)
	}
	if _, err := m.Resolve(ctx, token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("esperava ErrSessionNotFound após logout, obtido %v", err)
	}
}

func TestManagerResolve(t *testing.T) {
	ctx := context.Background()
	t1, t2 := "T1", "T2"

	t.Run("token inválido", func(t *testing.T) {
		m := newTestManager(t, fakeUsers{}, fakeVerifier{}, countRecorder{})
		if _, err := m.Resolve(ctx, "nao-e-um-jwt"); !errors.Is(err, ErrSessionNotFound) || !errors.Is(err, auth.ErrInvalidToken) {
			t.Errorf("erro inesperado: %v", err)
		}
	})

	t.Run("dados antigos são recarregados", func(t *testing.T) {
		users := fakeUsers{"ana": {ID: "U1", Username: "ana", TenantID: &t1}}
		m := newTestManager(t, users, fakeVerifier{passwords: map[string]string{"ana": "segredo"}}, countRecorder{})

		_, token, err := m.Login(ctx, "ana", "segredo")
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}

		users["ana"].TenantID = &t2

		sess, _ := m.Resolve(ctx, token)
		if *sess.User.TenantID != "T1" {
			t.Errorf("dentro do intervalo o cache deveria ser usado, tenant = %s", *sess.User.TenantID)
		}

		later := time.Now().Add(10 * time.Minute)
		m.now = func() time.Time { return later }

		sess, err = m.Resolve(ctx, token)
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if *sess.User.TenantID != "T2" {
			t.Errorf("tenant = %s, esperado T2 após atualização", *sess.User.TenantID)
		}
	})

	t.Run("usuário removido encerra a sessão", func(t *testing.T) {
		users := fakeUsers{"ana": {ID: "U1", Username: "ana", TenantID: &t1}}
		m := newTestManager(t, users, fakeVerifier{passwords: map[string]string{"ana": "segredo"}}, countRecorder{})

		_, token, _ := m.Login(ctx, "ana", "segredo")
		delete(users, "ana")
		m.now = func() time.Time { return time.Now().Add(10 * time.Minute) }

		if _, err := m.Resolve(ctx, token); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("esperava ErrSessionNotFound, obtido %v", err)
		}
	})
}

type failingDeleteStore struct {
	Store
}

func (failingDeleteStore) Delete(context.Context, string) error {
	return errors.New("redis indisponível")
}

type warnRecorder struct {
	logger.Logger
	warnings []string
}

func (w *warnRecorder) Warn(msg string, _ ...interface{}) {
	w.warnings = append(w.warnings, msg)
}

func TestManagerResolveLogsFailedDelete(t *testing.T) {
	ctx := context.Background()
	t1 := "T1"
	users := fakeUsers{"ana": {ID: "U1", Username: "ana", TenantID: &t1}}
	tokens, err := auth.NewJWTService("segredo-de-teste", time.Hour)
	if err != nil {
		t.Fatalf("erro ao criar JWTService: %v", err)
	}
	logs := &warnRecorder{Logger: logger.NewNop()}
	m := NewManager(Config{
		Verifier:        fakeVerifier{passwords: map[string]string{"ana": "segredo"}},
		Users:           users,
		Tokens:          tokens,
		Store:           failingDeleteStore{Store: NewMemoryStore()},
		Recorder:        countRecorder{},
		RefreshInterval: 5 * time.Minute,
		Logger:          logs,
	})

	_, token, err := m.Login(ctx, "ana", "segredo")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	delete(users, "ana")
	m.now = func() time.Time { return time.Now().Add(10 * time.Minute) }

	if _, err := m.Resolve(ctx, token); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("esperava ErrSessionNotFound, obtido %v", err)
	}
	if len(logs.warnings) != 1 {
		t.Errorf("avisos = %v, esperado 1", logs.warnings)
	}
}

func TestKeyForNeverStoresToken(t *testing.T) {
	key := KeyFor("abc")
	if key == "abc" || len(key) != len(keyPrefix)+64 {
		t.Errorf("chave inesperada: %s", key)
	}
	if KeyFor("abc") != key {
		t.Error("chave deveria ser determinística")
	}
}
