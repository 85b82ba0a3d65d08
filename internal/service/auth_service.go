package service

import (
	"cronos_backend/internal/config"
	"cronos_backend/internal/model"
	"cronos_backend/internal/util"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userStore interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	UpdateLastLogin(userID uint) error
}

type AuthService struct {
	repo userStore
	cfg  *config.Config
}

func NewAuthService(repo userStore, cfg *config.Config) *AuthService {
	return &AuthService{repo: repo, cfg: cfg}
}

type Credenciais struct {
	Token   string      `json:"token"`
	Usuario *model.User `json:"usuario"`
}

// Registrar cria a conta do estudante. E-mail é único; senha entra com
// hash bcrypt.
func (s *AuthService) Registrar(nome, email, senha string) (*Credenciais, error) {
	if _, err := s.repo.FindByEmail(email); err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Nome:  nome,
		Email: email,
		Senha: string(hash),
		Role:  model.Student,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	return s.emitir(user)
}

func (s *AuthService) Login(email, senha string) (*Credenciais, error) {
	user, err := s.repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(senha)) != nil {
		return nil, util.ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(user.ID); err != nil {
		return nil, err
	}
	return s.emitir(user)
}

func (s *AuthService) Perfil(userID uint) (*model.User, error) {
	user, err := s.repo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) AtualizarPerfil(userID uint, nome string) (*model.User, error) {
	user, err := s.Perfil(userID)
	if err != nil {
		return nil, err
	}
	user.Nome = nome
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) emitir(user *model.User) (*Credenciais, error) {
	token, err := util.GenerateJWT(user, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}
	return &Credenciais{Token: token, Usuario: user}, nil
}
