package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/gestao-varejo/pkg/domain"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength é o tamanho mínimo de senha aceito
const MinPasswordLength = 6

var (
	ErrEmptyUsername     = domain.Validation("nome de usuário não pode ser vazio")
	ErrWeakPassword      = domain.Validation("a senha deve ter pelo menos 6 caracteres")
	ErrTenantRequired    = domain.Validation("usuários não administradores precisam de um tenant")
	ErrUserNotFound      = domain.NewError(domain.ErrNotFound, "usuário não encontrado")
	ErrDuplicateUsername = domain.NewError(domain.ErrConflict, "já existe um usuário com este nome")
	ErrCannotDeleteSelf  = domain.NewError(domain.ErrForbidden, "não é possível excluir o próprio usuário")
	ErrAdminExists       = domain.NewError(domain.ErrConflict, "o administrador inicial já foi criado")
)

// User representa um usuário autorizado do sistema
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // O hash nunca é retornado nas respostas JSON
	TenantID     *string   `json:"tenant_id"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser cria um novo usuário com a senha já protegida por hash
func NewUser(username, password string, tenantID *string, isAdmin bool) (*User, error) {
	now := time.Now()
	u := &User{
		ID:        uuid.New().String(),
		Username:  strings.TrimSpace(username),
		TenantID:  normalizeTenant(tenantID),
		IsAdmin:   isAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate verifica as invariantes do usuário
func (u *User) Validate() error {
	if u.Username == "" {
		return ErrEmptyUsername
	}
	if !u.IsAdmin && u.TenantID == nil {
		return ErrTenantRequired
	}
	return nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// Assign altera o vínculo de tenant e o papel de administrador
func (u *User) Assign(tenantID *string, isAdmin bool) error {
	next := *u
	next.TenantID = normalizeTenant(tenantID)
	next.IsAdmin = isAdmin
	if err := next.Validate(); err != nil {
		return err
	}
	next.UpdatedAt = time.Now()
	*u = next
	return nil
}

// CheckDeletion impede que o usuário autenticado exclua a si mesmo
func CheckDeletion(actorUserID, targetID string) error {
	if actorUserID != "" && actorUserID == targetID {
		return ErrCannotDeleteSelf
	}
	return nil
}

func normalizeTenant(tenantID *string) *string {
	if tenantID == nil || strings.TrimSpace(*tenantID) == "" {
		return nil
	}
	id := strings.TrimSpace(*tenantID)
	return &id
}
