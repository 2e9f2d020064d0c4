package tenant

import (
	"errors"
	"testing"
)

// fakeQuery registra os filtros aplicados
type fakeQuery struct {
	filters map[string]any
}

func (q fakeQuery) Where(column string, value any) fakeQuery {
	next := map[string]any{}
	for k, v := range q.filters {
		next[k] = v
	}
	next[column] = value
	return fakeQuery{filters: next}
}

func TestFilterForRead(t *testing.T) {
	t.Run("usuário comum vê apenas o próprio tenant", func(t *testing.T) {
		q, err := FilterForRead(fakeQuery{}, Actor{Username: "ana", TenantID: "T1"})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if q.filters[Column] != "T1" {
			t.Errorf("filtro de tenant = %v, esperado T1", q.filters[Column])
		}
	})

	t.Run("administrador não recebe filtro", func(t *testing.T) {
		q, err := FilterForRead(fakeQuery{}, Actor{Username: "root", IsAdmin: true})
		if err != nil {
			t.Fatalf("erro inesperado: %v", err)
		}
		if _, ok := q.filters[Column]; ok {
			t.Error("administrador não deveria ter filtro de tenant")
		}
	})

	t.Run("usuário sem tenant é rejeitado", func(t *testing.T) {
		_, err := FilterForRead(fakeQuery{}, Actor{Username: "ana"})
		if !errors.Is(err, ErrTenantUnresolved) {
			t.Errorf("esperava ErrTenantUnresolved, obtido %v", err)
		}
	})
}

func TestTenantIDForInsert(t *testing.T) {
	id, err := TenantIDForInsert(Actor{Username: "ana", TenantID: "T1"})
	if err != nil || id == nil || *id != "T1" {
		t.Errorf("esperava T1, obtido %v (%v)", id, err)
	}

	id, err = TenantIDForInsert(Actor{Username: "root", IsAdmin: true})
	if err != nil || id != nil {
		t.Errorf("administrador deveria gravar sem tenant, obtido %v (%v)", id, err)
	}

	if _, err := TenantIDForInsert(Actor{Username: "ana"}); !errors.Is(err, ErrTenantUnresolved) {
		t.Errorf("esperava ErrTenantUnresolved, obtido %v", err)
	}
}

func TestChooseTenantForInsert(t *testing.T) {
	chosen := "T9"

	id, _ := ChooseTenantForInsert(Actor{IsAdmin: true}, &chosen)
	if id == nil || *id != "T9" {
		t.Errorf("administrador deveria poder escolher o tenant, obtido %v", id)
	}

	id, _ = ChooseTenantForInsert(Actor{TenantID: "T1"}, &chosen)
	if id == nil || *id != "T1" {
		t.Errorf("usuário comum deveria gravar no próprio tenant, obtido %v", id)
	}

	empty := ""
	id, _ = ChooseTenantForInsert(Actor{IsAdmin: true}, &empty)
	if id != nil {
		t.Errorf("escolha vazia deveria resultar em nil, obtido %v", *id)
	}
}

func TestCanAccess(t *testing.T) {
	t1, t2 := "T1", "T2"
	user := Actor{TenantID: "T1"}

	if !CanAccess(user, &t1) {
		t.Error("usuário deveria acessar linha do próprio tenant")
	}
	if CanAccess(user, &t2) {
		t.Error("usuário não deveria acessar linha de outro tenant")
	}
	if CanAccess(user, nil) {
		t.Error("usuário não deveria acessar linha sem tenant")
	}
	if !CanAccess(Actor{IsAdmin: true}, &t2) {
		t.Error("administrador deveria acessar qualquer linha")
	}
}
