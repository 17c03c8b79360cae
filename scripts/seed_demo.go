// Popula o banco com dados de demonstração: usuários, quizzes com perguntas
// de verdadeiro ou falso e algumas participações já corrigidas.
//
// Uso: go run scripts/seed_demo.go
package main

import (
	"log"

	"quiz_app_backend/internal/config"
	"quiz_app_backend/internal/model"
	"quiz_app_backend/internal/repository"
	"quiz_app_backend/internal/service"
	"quiz_app_backend/pkg/database"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("carregar configuração: %v", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("conectar ao banco: %v", err)
	}

	users := []*model.User{
		{Name: "Ana Souza", Email: "ana@example.com", Role: model.RoleUser},
		{Name: "Bruno Lima", Email: "bruno@example.com", Role: model.RoleUser},
		{Name: "Carla Mendes", Email: "carla@example.com", Role: model.RoleUser},
	}
	for _, u := range users {
		if err := db.FirstOrCreate(u, model.User{Email: u.Email}).Error; err != nil {
			log.Fatalf("criar usuário %s: %v", u.Email, err)
		}
	}

	type demoQuestion struct {
		text    string
		correct bool
	}
	demos := []struct {
		title       string
		description string
		questions   []demoQuestion
	}{
		{
			title:       "Conhecimentos Gerais",
			description: "Perguntas variadas de verdadeiro ou falso.",
			questions: []demoQuestion{
				{"Brasília é a capital do Brasil?", true},
				{"O Sol gira em torno da Terra?", false},
				{"A Grande Muralha fica na China?", true},
			},
		},
		{
			title:       "Ciências",
			description: "Física, química e biologia básicas.",
			questions: []demoQuestion{
				{"A água ferve a 100°C ao nível do mar?", true},
				{"O corpo humano tem 300 ossos na idade adulta?", false},
			},
		},
	}

	var quizzes []*model.Quiz
	for _, d := range demos {
		quiz := &model.Quiz{Title: d.title, Description: d.description}
		if err := db.FirstOrCreate(quiz, model.Quiz{Title: d.title}).Error; err != nil {
			log.Fatalf("criar quiz %s: %v", d.title, err)
		}
		quizzes = append(quizzes, quiz)

		for _, q := range d.questions {
			question := &model.Question{QuizID: quiz.ID, Text: q.text, CorrectAnswer: q.correct}
			if err := db.FirstOrCreate(question, model.Question{QuizID: quiz.ID, Text: q.text}).Error; err != nil {
				log.Fatalf("criar pergunta %q: %v", q.text, err)
			}
		}
	}

	// As participações entram pelo fluxo normal de submissão para que
	// pontuação, respostas e ranking saiam consistentes.
	participations := service.NewParticipationService(
		repository.NewParticipationRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewQuizRepository(db),
		db,
	)

	for i, u := range users {
		quiz := quizzes[i%len(quizzes)]

		var questions []model.Question
		if err := db.Where("quiz_id = ?", quiz.ID).Order("id").Find(&questions).Error; err != nil {
			log.Fatalf("carregar perguntas: %v", err)
		}

		answers := make([]service.AnswerInput, 0, len(questions))
		for j := range questions {
			// Alterna acertos e erros para variar as pontuações.
			answer := questions[j].CorrectAnswer
			if (i+j)%3 == 0 {
				answer = !answer
			}
			answers = append(answers, service.AnswerInput{QuestionID: questions[j].ID, Answer: &answer})
		}

		if _, _, err := participations.Submit(u.ID, quiz.ID, answers); err != nil {
			log.Printf("participação de %s no quiz %s ignorada: %v", u.Email, quiz.Title, err)
			continue
		}
		log.Printf("participação de %s no quiz %s registrada", u.Email, quiz.Title)
	}

	log.Println("dados de demonstração prontos")
}
