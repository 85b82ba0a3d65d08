package service

import (
	"context"
	"cronos_backend/internal/model"
	"cronos_backend/internal/repository"
	"cronos_backend/internal/util"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"
)

type chaveResultado struct {
	usuarioID uint
	quizID    uint
	questaoID uint
}

type fakeQuizStore struct {
	quizPorConteudo map[uint]*model.Quiz
	idsPorQuiz      map[uint][]uint
	resultados      map[chaveResultado]*model.QuizResultado
	proximoID       uint

	createCalls int
}

func newFakeQuizStore() *fakeQuizStore {
	return &fakeQuizStore{
		quizPorConteudo: make(map[uint]*model.Quiz),
		idsPorQuiz:      make(map[uint][]uint),
		resultados:      make(map[chaveResultado]*model.QuizResultado),
	}
}

func (f *fakeQuizStore) FindByConteudo(conteudoID uint) (*model.Quiz, error) {
	quiz, ok := f.quizPorConteudo[conteudoID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return quiz, nil
}

func (f *fakeQuizStore) CreateComQuestoes(quiz *model.Quiz, questaoIDs []uint) error {
	f.createCalls++
	f.proximoID++
	quiz.ID = f.proximoID
	f.quizPorConteudo[quiz.ConteudoID] = quiz
	f.idsPorQuiz[quiz.ID] = append([]uint(nil), questaoIDs...)
	return nil
}

func (f *fakeQuizStore) QuestaoIDsDoQuiz(quizID uint) ([]uint, error) {
	return f.idsPorQuiz[quizID], nil
}

func (f *fakeQuizStore) EnsureResultados(usuarioID, quizID uint, questaoIDs []uint) error {
	for _, questaoID := range questaoIDs {
		chave := chaveResultado{usuarioID, quizID, questaoID}
		if _, ok := f.resultados[chave]; !ok {
			f.resultados[chave] = &model.QuizResultado{
				UsuarioID: usuarioID,
				QuizID:    quizID,
				QuestaoID: questaoID,
			}
		}
	}
	return nil
}

func (f *fakeQuizStore) FindResultado(usuarioID, quizID, questaoID uint) (*model.QuizResultado, error) {
	resultado, ok := f.resultados[chaveResultado{usuarioID, quizID, questaoID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return resultado, nil
}

func (f *fakeQuizStore) GravarResposta(usuarioID, quizID, questaoID uint, correta bool) error {
	resultado, ok := f.resultados[chaveResultado{usuarioID, quizID, questaoID}]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	agora := time.Now()
	resultado.Correta = &correta
	resultado.RespondidoEm = &agora
	return nil
}

func (f *fakeQuizStore) ContarResultados(usuarioID, quizID uint) (int64, int64, error) {
	var total, pendentes int64
	for chave, resultado := range f.resultados {
		if chave.usuarioID == usuarioID && chave.quizID == quizID {
			total++
			if resultado.RespondidoEm == nil {
				pendentes++
			}
		}
	}
	return total, pendentes, nil
}

func (f *fakeQuizStore) Agregado(usuarioID, quizID uint) (int64, int64, error) {
	var acertos, erros int64
	for chave, resultado := range f.resultados {
		if chave.usuarioID == usuarioID && chave.quizID == quizID && resultado.RespondidoEm != nil {
			if *resultado.Correta {
				acertos++
			} else {
				erros++
			}
		}
	}
	return acertos, erros, nil
}

func (f *fakeQuizStore) ResumoItens(usuarioID, quizID uint) ([]repository.ResumoItem, error) {
	return nil, nil
}

func (f *fakeQuizStore) Historico(usuarioID uint) ([]repository.HistoricoItem, error) {
	return nil, nil
}

type fakeQuestaoStore struct {
	questoes  []model.Questao
	proximoID uint
	createErr error
}

func (f *fakeQuestaoStore) FindCompletasByConteudo(conteudoID uint, limit int) ([]model.Questao, error) {
	var out []model.Questao
	for _, questao := range f.questoes {
		if questao.ConteudoID == conteudoID && len(questao.Alternativas) == 5 {
			out = append(out, questao)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeQuestaoStore) FindByIDs(ids []uint) ([]model.Questao, error) {
	var out []model.Questao
	for _, id := range ids {
		for _, questao := range f.questoes {
			if questao.ID == id {
				out = append(out, questao)
			}
		}
	}
	return out, nil
}

func (f *fakeQuestaoStore) CreateComAlternativas(questao *model.Questao) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.proximoID++
	questao.ID = f.proximoID + 1000
	f.questoes = append(f.questoes, *questao)
	return nil
}

func (f *fakeQuestaoStore) FindRespostaInfo(alternativaID, questaoID uint) (*repository.RespostaInfo, error) {
	for _, questao := range f.questoes {
		if questao.ID != questaoID {
			continue
		}
		for _, alternativa := range questao.Alternativas {
			if alternativa.ID == alternativaID {
				return &repository.RespostaInfo{
					LetraEscolhida: alternativa.Letra,
					LetraCorreta:   questao.AlternativaCorreta,
					Explicacao:     questao.Explicacao,
				}, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

type fakeConteudoFinder struct {
	detalhe *repository.ConteudoDetalhe
	err     error
}

func (f *fakeConteudoFinder) FindDetalheByID(id uint) (*repository.ConteudoDetalhe, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.detalhe, nil
}

type fakeGerador struct {
	resposta string
	err      error
	calls    int
}

func (f *fakeGerador) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.resposta, nil
}

func questaoCompleta(id, conteudoID uint) model.Questao {
	questao := model.Questao{
		ConteudoID:         conteudoID,
		MateriaID:          7,
		Enunciado:          fmt.Sprintf("Enunciado %d", id),
		AlternativaCorreta: "B",
		Explicacao:         "Porque sim.",
	}
	questao.ID = id
	for i, letra := range []string{"A", "B", "C", "D", "E"} {
		alternativa := model.Alternativa{QuestaoID: id, Letra: letra, Texto: "opção " + letra}
		alternativa.ID = id*10 + uint(i) + 1
		questao.Alternativas = append(questao.Alternativas, alternativa)
	}
	return questao
}

func loteQuestoesJSON(quantidade int) string {
	out := "["
	for i := 0; i < quantidade; i++ {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"pergunta": "Gerada %d?", "alternativas": ["um", "dois", "três", "quatro", "cinco"], "resposta_correta": "C", "explicacao": "ok"}`, i+1)
	}
	return out + "]"
}

func TestCriarSessaoComPoolSuficienteNaoChamaIA(t *testing.T) {
	quizStore := newFakeQuizStore()
	questaoStore := &fakeQuestaoStore{}
	for i := uint(1); i <= 12; i++ {
		questaoStore.questoes = append(questaoStore.questoes, questaoCompleta(i, 55))
	}
	gerador := &fakeGerador{}
	svc := NewQuizService(quizStore, questaoStore, &fakeConteudoFinder{}, gerador)

	sessao, err := svc.CriarSessao(context.Background(), 9, 55)
	if err != nil {
		t.Fatalf("CriarSessao: %v", err)
	}
	if gerador.calls != 0 {
		t.Errorf("IA não deveria ser chamada com pool de 12, houve %d chamadas", gerador.calls)
	}
	if len(sessao.Questoes) != 10 {
		t.Fatalf("esperava 10 questões, vieram %d", len(sessao.Questoes))
	}

	// marcadores garantidos para as 10 questões
	total, pendentes, _ := quizStore.ContarResultados(9, sessao.QuizID)
	if total != 10 || pendentes != 10 {
		t.Errorf("marcadores: total=%d pendentes=%d", total, pendentes)
	}

	// segunda chamada retoma a mesma sessão
	segunda, err := svc.CriarSessao(context.Background(), 9, 55)
	if err != nil {
		t.Fatalf("segunda CriarSessao: %v", err)
	}
	if segunda.QuizID != sessao.QuizID {
		t.Errorf("quiz mudou entre chamadas: %d != %d", segunda.QuizID, sessao.QuizID)
	}
	if quizStore.createCalls != 1 {
		t.Errorf("esperava 1 criação, houve %d", quizStore.createCalls)
	}
}

func TestCriarSessaoCompletaComIA(t *testing.T) {
	quizStore := newFakeQuizStore()
	questaoStore := &fakeQuestaoStore{}
	for i := uint(1); i <= 4; i++ {
		questaoStore.questoes = append(questaoStore.questoes, questaoCompleta(i, 55))
	}
	gerador := &fakeGerador{resposta: loteQuestoesJSON(6)}
	conteudos := &fakeConteudoFinder{detalhe: detalheTeste(55)}
	svc := NewQuizService(quizStore, questaoStore, conteudos, gerador)

	sessao, err := svc.CriarSessao(context.Background(), 9, 55)
	if err != nil {
		t.Fatalf("CriarSessao: %v", err)
	}
	if gerador.calls != 1 {
		t.Errorf("esperava 1 chamada à IA, houve %d", gerador.calls)
	}
	if len(sessao.Questoes) != 10 {
		t.Fatalf("esperava 10 questões, vieram %d", len(sessao.Questoes))
	}
}

func TestCriarSessaoPoolInsuficienteMesmoComIA(t *testing.T) {
	quizStore := newFakeQuizStore()
	questaoStore := &fakeQuestaoStore{}
	for i := uint(1); i <= 3; i++ {
		questaoStore.questoes = append(questaoStore.questoes, questaoCompleta(i, 55))
	}
	gerador := &fakeGerador{resposta: loteQuestoesJSON(4)}
	conteudos := &fakeConteudoFinder{detalhe: detalheTeste(55)}
	svc := NewQuizService(quizStore, questaoStore, conteudos, gerador)

	_, err := svc.CriarSessao(context.Background(), 9, 55)
	var insuficientes *util.QuestoesInsuficientesError
	if !errors.As(err, &insuficientes) {
		t.Fatalf("esperava QuestoesInsuficientesError, veio %v", err)
	}
	if insuficientes.Obtidas != 7 {
		t.Errorf("Obtidas = %d, esperava 7", insuficientes.Obtidas)
	}
	if quizStore.createCalls != 0 {
		t.Errorf("quiz não deveria ser criado com pool incompleto")
	}
}

func TestCriarSessaoFalhaDaIAViraPoolInsuficiente(t *testing.T) {
	quizStore := newFakeQuizStore()
	questaoStore := &fakeQuestaoStore{}
	for i := uint(1); i <= 8; i++ {
		questaoStore.questoes = append(questaoStore.questoes, questaoCompleta(i, 55))
	}
	gerador := &fakeGerador{err: &util.ProviderError{Kind: util.ProviderRateLimited, Status: 429}}
	conteudos := &fakeConteudoFinder{detalhe: detalheTeste(55)}
	svc := NewQuizService(quizStore, questaoStore, conteudos, gerador)

	_, err := svc.CriarSessao(context.Background(), 9, 55)
	var insuficientes *util.QuestoesInsuficientesError
	if !errors.As(err, &insuficientes) {
		t.Fatalf("falha do provedor deveria virar QuestoesInsuficientes, veio %v", err)
	}
	if insuficientes.Obtidas != 8 {
		t.Errorf("Obtidas = %d, esperava 8", insuficientes.Obtidas)
	}
}

func TestCriarSessaoPerdeCorridaEReusaVencedor(t *testing.T) {
	quizStore := newFakeQuizStore()
	questaoStore := &fakeQuestaoStore{}
	for i := uint(1); i <= 10; i++ {
		questaoStore.questoes = append(questaoStore.questoes, questaoCompleta(i, 55))
	}
	// o Create devolve chave duplicada, como se outro pedido tivesse
	// vencido a corrida; o quiz do vencedor aparece no re-read
	vencedor := &model.Quiz{ConteudoID: 55, MateriaID: 7, Total: 10}
	vencedor.ID = 99
	store := &quizStoreCorrida{fakeQuizStore: quizStore, vencedor: vencedor}
	svc := NewQuizService(store, questaoStore, &fakeConteudoFinder{}, &fakeGerador{})

	sessao, err := svc.CriarSessao(context.Background(), 9, 55)
	if err != nil {
		t.Fatalf("CriarSessao: %v", err)
	}
	if sessao.QuizID != 99 {
		t.Errorf("deveria reusar a sessão do vencedor (99), veio %d", sessao.QuizID)
	}
}

// quizStoreCorrida simula a corrida de criação: o Create perde com chave
// duplicada e o quiz do vencedor passa a ser visível em seguida.
type quizStoreCorrida struct {
	*fakeQuizStore
	vencedor *model.Quiz
}

func (s *quizStoreCorrida) CreateComQuestoes(quiz *model.Quiz, questaoIDs []uint) error {
	s.quizPorConteudo[s.vencedor.ConteudoID] = s.vencedor
	s.idsPorQuiz[s.vencedor.ID] = []uint{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	return gorm.ErrDuplicatedKey
}

func detalheTeste(conteudoID uint) *repository.ConteudoDetalhe {
	detalhe := &repository.ConteudoDetalhe{
		MateriaNome:   "História",
		TopicoNome:    "Brasil Império",
		SubtopicoNome: "Lei de Terras",
	}
	detalhe.ID = conteudoID
	detalhe.MateriaID = 7
	detalhe.TopicoID = 3
	detalhe.SubtopicoID = 12
	detalhe.TextoHTML = "<h2>Lei de Terras</h2><p>Conteúdo da aula.</p>"
	return detalhe
}

func sessaoRespondivel(t *testing.T) (*QuizService, *fakeQuizStore, *fakeQuestaoStore, *SessaoQuiz) {
	t.Helper()
	quizStore := newFakeQuizStore()
	questaoStore := &fakeQuestaoStore{}
	for i := uint(1); i <= 10; i++ {
		questaoStore.questoes = append(questaoStore.questoes, questaoCompleta(i, 55))
	}
	svc := NewQuizService(quizStore, questaoStore, &fakeConteudoFinder{}, &fakeGerador{})
	sessao, err := svc.CriarSessao(context.Background(), 9, 55)
	if err != nil {
		t.Fatalf("CriarSessao: %v", err)
	}
	return svc, quizStore, questaoStore, sessao
}

func TestResponderCorrigeEGrava(t *testing.T) {
	svc, quizStore, _, sessao := sessaoRespondivel(t)

	// questão 1, alternativa B (gabarito)
	resultado, err := svc.Responder(9, sessao.QuizID, 1, 12)
	if err != nil {
		t.Fatalf("Responder: %v", err)
	}
	if !resultado.Correta {
		t.Error("alternativa B deveria ser correta")
	}
	if resultado.LetraCorreta != "B" {
		t.Errorf("LetraCorreta = %q", resultado.LetraCorreta)
	}
	if resultado.Explicacao != "Porque sim." {
		t.Errorf("Explicacao = %q", resultado.Explicacao)
	}

	gravado, _ := quizStore.FindResultado(9, sessao.QuizID, 1)
	if gravado.RespondidoEm == nil || gravado.Correta == nil || !*gravado.Correta {
		t.Error("resultado não gravado junto da correção")
	}

	// reenvio com alternativa errada sobrescreve
	resultado, err = svc.Responder(9, sessao.QuizID, 1, 11)
	if err != nil {
		t.Fatalf("reenvio: %v", err)
	}
	if resultado.Correta {
		t.Error("alternativa A deveria ser incorreta")
	}
	gravado, _ = quizStore.FindResultado(9, sessao.QuizID, 1)
	if *gravado.Correta {
		t.Error("reenvio deveria sobrescrever a correção")
	}
}

func TestResponderQuestaoForaDoQuiz(t *testing.T) {
	svc, _, questaoStore, sessao := sessaoRespondivel(t)

	// questão 77 existe mas não pertence à sessão
	intrusa := questaoCompleta(77, 88)
	questaoStore.questoes = append(questaoStore.questoes, intrusa)

	_, err := svc.Responder(9, sessao.QuizID, 77, intrusa.Alternativas[0].ID)
	if !errors.Is(err, util.ErrQuestaoForaDoQuiz) {
		t.Fatalf("esperava ErrQuestaoForaDoQuiz, veio %v", err)
	}
}

func TestResponderAlternativaDeOutraQuestao(t *testing.T) {
	svc, _, _, sessao := sessaoRespondivel(t)

	// alternativa 21 pertence à questão 2, não à 1
	_, err := svc.Responder(9, sessao.QuizID, 1, 21)
	if !errors.Is(err, util.ErrAlternativaInvalida) {
		t.Fatalf("esperava ErrAlternativaInvalida, veio %v", err)
	}
}

func TestFinalizarExigeTodasAsRespostas(t *testing.T) {
	svc, _, _, sessao := sessaoRespondivel(t)

	for i := uint(1); i <= 7; i++ {
		if _, err := svc.Responder(9, sessao.QuizID, i, i*10+2); err != nil {
			t.Fatalf("Responder %d: %v", i, err)
		}
	}

	_, err := svc.Finalizar(9, sessao.QuizID)
	var incompleto *util.QuizIncompletoError
	if !errors.As(err, &incompleto) {
		t.Fatalf("esperava QuizIncompletoError, veio %v", err)
	}
	if incompleto.Pendentes != 3 {
		t.Errorf("Pendentes = %d, esperava 3", incompleto.Pendentes)
	}
}

func TestFinalizarAgregaEEIdempotente(t *testing.T) {
	svc, _, _, sessao := sessaoRespondivel(t)

	// 6 acertos (B) e 4 erros (A)
	for i := uint(1); i <= 6; i++ {
		svc.Responder(9, sessao.QuizID, i, i*10+2)
	}
	for i := uint(7); i <= 10; i++ {
		svc.Responder(9, sessao.QuizID, i, i*10+1)
	}

	resultado, err := svc.Finalizar(9, sessao.QuizID)
	if err != nil {
		t.Fatalf("Finalizar: %v", err)
	}
	if resultado.Acertos != 6 || resultado.Erros != 4 || resultado.Total != 10 {
		t.Errorf("agregado = %+v", resultado)
	}

	repetido, err := svc.Finalizar(9, sessao.QuizID)
	if err != nil {
		t.Fatalf("Finalizar repetido: %v", err)
	}
	if *repetido != *resultado {
		t.Errorf("finalização repetida divergiu: %+v != %+v", repetido, resultado)
	}
}

func TestFinalizarSessaoInexistente(t *testing.T) {
	svc, _, _, _ := sessaoRespondivel(t)

	_, err := svc.Finalizar(9, 4040)
	if !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("esperava ErrQuizNotFound, veio %v", err)
	}
}
