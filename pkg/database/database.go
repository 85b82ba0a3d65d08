package database

import (
	"cronos_backend/internal/config"
	"cronos_backend/internal/model"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		// traduz erro de chave duplicada do driver para
		// gorm.ErrDuplicatedKey (arbitragem de corrida na criação de quiz)
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate cria/atualiza o esquema. Os índices únicos declarados nos models
// (quizzes.conteudo_id, quiz_resultados, evolucao, alternativas) fazem
// parte do contrato de concorrência e precisam existir no banco.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
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
		&model.Resumo{},
		&model.Flashcard{},
		&model.Motivacao{},
	)
}

// SeedMotivacoes garante um catálogo mínimo de frases na primeira subida.
func SeedMotivacoes(db *gorm.DB) {
	var count int64
	db.Model(&model.Motivacao{}).Count(&count)
	if count > 0 {
		return
	}

	frases := []string{
		"Cada questão respondida é um passo a mais rumo à aprovação.",
		"Constância vence talento: estude um pouco todos os dias.",
		"Errar no simulado é aprender de graça. Errar na prova custa um ano.",
		"Você não precisa ser o melhor hoje, só melhor do que ontem.",
	}
	for i, frase := range frases {
		db.Create(&model.Motivacao{
			Frase: frase,
			Ativa: true,
			EmUso: i == 0,
		})
	}
}
