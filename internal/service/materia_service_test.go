package service

import "testing"

func TestSlugify(t *testing.T) {
	casos := []struct {
		nome string
		slug string
	}{
		{"História", "historia"},
		{"Matemática e suas Tecnologias", "matematica-e-suas-tecnologias"},
		{"Redação", "redacao"},
		{"  Física  ", "fisica"},
		{"Geografia: Urbanização (Brasil)", "geografia-urbanizacao-brasil"},
	}

	for _, caso := range casos {
		if got := slugify(caso.nome); got != caso.slug {
			t.Errorf("slugify(%q) = %q, esperava %q", caso.nome, got, caso.slug)
		}
	}
}
