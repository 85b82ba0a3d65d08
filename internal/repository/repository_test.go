package repository

import (
	"cronos_backend/internal/model"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// bancoDeTeste abre um sqlite em memória isolado por teste, com o mesmo
// TranslateError da configuração de produção para que violações de índice
// único cheguem como gorm.ErrDuplicatedKey.
func bancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("abrir sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&model.Materia{},
		&model.Topico{},
		&model.Subtopico{},
		&model.Conteudo{},
		&model.Questao{},
		&model.Alternativa{},
		&model.Quiz{},
		&model.QuizQuestao{},
		&model.QuizResultado{},
		&model.Evolucao{},
	)
	if err != nil {
		t.Fatalf("migrar esquema: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// questaoComAlternativas grava uma questão completa (5 alternativas A-E)
// e devolve o registro com os ids preenchidos.
func questaoComAlternativas(t *testing.T, db *gorm.DB, conteudoID uint, gabarito string) *model.Questao {
	t.Helper()

	questao := &model.Questao{
		ConteudoID:         conteudoID,
		Enunciado:          fmt.Sprintf("Enunciado do conteúdo %d", conteudoID),
		AlternativaCorreta: gabarito,
		Explicacao:         "Porque sim.",
	}
	for _, letra := range []string{"A", "B", "C", "D", "E"} {
		questao.Alternativas = append(questao.Alternativas, model.Alternativa{
			Letra: letra,
			Texto: "Opção " + letra,
		})
	}
	if err := db.Create(questao).Error; err != nil {
		t.Fatalf("criar questão: %v", err)
	}
	return questao
}
