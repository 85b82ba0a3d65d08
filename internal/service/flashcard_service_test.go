package service

import (
	"cronos_backend/internal/model"
	"cronos_backend/internal/util"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"
)

type fakeFlashcardStore struct {
	cartoes map[uint]*model.Flashcard
	proximo uint
}

func newFakeFlashcardStore() *fakeFlashcardStore {
	return &fakeFlashcardStore{cartoes: make(map[uint]*model.Flashcard)}
}

func (f *fakeFlashcardStore) Create(flashcard *model.Flashcard) error {
	f.proximo++
	flashcard.ID = f.proximo
	f.cartoes[flashcard.ID] = flashcard
	return nil
}

func (f *fakeFlashcardStore) FindByIDEUsuario(id, usuarioID uint) (*model.Flashcard, error) {
	flashcard, ok := f.cartoes[id]
	if !ok || flashcard.UsuarioID != usuarioID {
		return nil, gorm.ErrRecordNotFound
	}
	return flashcard, nil
}

func (f *fakeFlashcardStore) ListByUsuario(usuarioID uint) ([]model.Flashcard, error) {
	var out []model.Flashcard
	for _, flashcard := range f.cartoes {
		if flashcard.UsuarioID == usuarioID {
			out = append(out, *flashcard)
		}
	}
	return out, nil
}

func (f *fakeFlashcardStore) ListParaRevisao(usuarioID uint, agora time.Time) ([]model.Flashcard, error) {
	var out []model.Flashcard
	for _, flashcard := range f.cartoes {
		if flashcard.UsuarioID == usuarioID && flashcard.ProximaRevisao != nil && !flashcard.ProximaRevisao.After(agora) {
			out = append(out, *flashcard)
		}
	}
	return out, nil
}

func (f *fakeFlashcardStore) Update(flashcard *model.Flashcard) error {
	f.cartoes[flashcard.ID] = flashcard
	return nil
}

func (f *fakeFlashcardStore) Delete(id, usuarioID uint) error {
	delete(f.cartoes, id)
	return nil
}

func flashcardServiceEm(agora time.Time, store flashcardStore) *FlashcardService {
	svc := NewFlashcardService(store)
	svc.now = func() time.Time { return agora }
	return svc
}

func TestCriarFlashcardAgendaPelaDificuldade(t *testing.T) {
	agora := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	casos := []struct {
		dificuldade string
		dias        int
	}{
		{"facil", 5},
		{"medio", 3},
		{"dificil", 1},
		{"", 3}, // vazio cai em médio
	}

	for _, caso := range casos {
		svc := flashcardServiceEm(agora, newFakeFlashcardStore())
		flashcard, err := svc.Criar(40, 1, "Pergunta", "Resposta", caso.dificuldade)
		if err != nil {
			t.Fatalf("Criar(%q): %v", caso.dificuldade, err)
		}
		esperada := agora.AddDate(0, 0, caso.dias)
		if flashcard.ProximaRevisao == nil || !flashcard.ProximaRevisao.Equal(esperada) {
			t.Errorf("dificuldade %q: próxima revisão %v, esperava %v", caso.dificuldade, flashcard.ProximaRevisao, esperada)
		}
		if flashcard.Status != model.FlashcardARevisar {
			t.Errorf("dificuldade %q: status %q", caso.dificuldade, flashcard.Status)
		}
	}
}

func TestRevisarReagendaComNovaDificuldade(t *testing.T) {
	agora := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store := newFakeFlashcardStore()
	svc := flashcardServiceEm(agora, store)

	criado, err := svc.Criar(40, 1, "Pergunta", "Resposta", "dificil")
	if err != nil {
		t.Fatalf("Criar: %v", err)
	}

	revisado, err := svc.Revisar(40, criado.ID, "facil")
	if err != nil {
		t.Fatalf("Revisar: %v", err)
	}
	if revisado.Status != model.FlashcardRevisado {
		t.Errorf("status = %q, esperava revisado", revisado.Status)
	}
	if revisado.NivelDificuldade != "facil" {
		t.Errorf("dificuldade = %q, esperava facil", revisado.NivelDificuldade)
	}
	esperada := agora.AddDate(0, 0, 5)
	if revisado.ProximaRevisao == nil || !revisado.ProximaRevisao.Equal(esperada) {
		t.Errorf("próxima revisão %v, esperava %v", revisado.ProximaRevisao, esperada)
	}
}

func TestRevisarSemDificuldadeMantemAAtual(t *testing.T) {
	agora := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store := newFakeFlashcardStore()
	svc := flashcardServiceEm(agora, store)

	criado, err := svc.Criar(40, 1, "Pergunta", "Resposta", "dificil")
	if err != nil {
		t.Fatalf("Criar: %v", err)
	}

	revisado, err := svc.Revisar(40, criado.ID, "")
	if err != nil {
		t.Fatalf("Revisar: %v", err)
	}
	if revisado.NivelDificuldade != "dificil" {
		t.Errorf("dificuldade = %q, esperava manter dificil", revisado.NivelDificuldade)
	}
	esperada := agora.AddDate(0, 0, 1)
	if revisado.ProximaRevisao == nil || !revisado.ProximaRevisao.Equal(esperada) {
		t.Errorf("próxima revisão %v, esperava %v", revisado.ProximaRevisao, esperada)
	}
}

func TestRevisarCartaoAlheio(t *testing.T) {
	store := newFakeFlashcardStore()
	svc := flashcardServiceEm(time.Now(), store)

	criado, err := svc.Criar(40, 1, "Pergunta", "Resposta", "medio")
	if err != nil {
		t.Fatalf("Criar: %v", err)
	}

	if _, err := svc.Revisar(41, criado.ID, "facil"); !errors.Is(err, util.ErrFlashcardNotFound) {
		t.Errorf("err = %v, esperava ErrFlashcardNotFound", err)
	}
	if err := svc.Excluir(41, criado.ID); !errors.Is(err, util.ErrFlashcardNotFound) {
		t.Errorf("Excluir alheio: err = %v, esperava ErrFlashcardNotFound", err)
	}
}

func TestParaRevisaoFiltraPorVencimento(t *testing.T) {
	agora := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	store := newFakeFlashcardStore()
	svc := flashcardServiceEm(agora, store)

	vencido, err := svc.Criar(40, 1, "Vencido", "R", "dificil")
	if err != nil {
		t.Fatalf("Criar: %v", err)
	}
	if _, err := svc.Criar(40, 1, "Futuro", "R", "facil"); err != nil {
		t.Fatalf("Criar: %v", err)
	}

	// dois dias depois só o difícil (1 dia) venceu
	svc.now = func() time.Time { return agora.AddDate(0, 0, 2) }
	prontos, err := svc.ParaRevisao(40)
	if err != nil {
		t.Fatalf("ParaRevisao: %v", err)
	}
	if len(prontos) != 1 {
		t.Fatalf("len = %d, esperava 1", len(prontos))
	}
	if prontos[0].ID != vencido.ID {
		t.Errorf("id = %d, esperava %d", prontos[0].ID, vencido.ID)
	}
}
