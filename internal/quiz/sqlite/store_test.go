package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"quiz-builder/internal/quiz"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	store, err := NewStore(path, PoolConfig{MaxOpenConns: 1})
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func boolPtr(v bool) *bool {
	return &v
}

func samplePayload() *quiz.QuizPayload {
	return &quiz.QuizPayload{
		Title:       "Geography",
		Description: "World capitals",
		Published:   boolPtr(true),
		Questions: []quiz.QuestionPayload{
			{
				Text:      "Capital of France?",
				Mandatory: true,
				Options: []quiz.OptionPayload{
					{Text: "Paris", IsCorrect: true},
					{Text: "Lyon"},
				},
			},
			{
				Text: "Capital of Spain?",
				Options: []quiz.OptionPayload{
					{Text: "Madrid", IsCorrect: true},
					{Text: "Barcelona"},
					{Text: "Seville"},
				},
			},
		},
	}
}

func TestStoreCreateAndGetQuiz(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateQuiz(ctx, samplePayload())
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	if created.QuizID == 0 {
		t.Fatalf("expected assigned quiz id, got %+v", created)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() || created.PublishedAt.IsZero() {
		t.Fatalf("expected store-assigned timestamps, got %+v", created)
	}
	if len(created.Questions) != 2 {
		t.Fatalf("created question count = %d, want 2", len(created.Questions))
	}
	for _, question := range created.Questions {
		if question.QuestionID == 0 {
			t.Fatalf("question missing id: %+v", question)
		}
		for _, option := range question.Options {
			if option.OptionID == 0 {
				t.Fatalf("option missing id: %+v", option)
			}
		}
	}

	got, err := store.GetQuiz(ctx, created.QuizID)
	if err != nil {
		t.Fatalf("GetQuiz failed: %v", err)
	}

	if got.Title != "Geography" || got.Description != "World capitals" || !got.Published {
		t.Fatalf("unexpected quiz row: %+v", got)
	}
	if len(got.Questions) != 2 {
		t.Fatalf("question count = %d, want 2", len(got.Questions))
	}

	first := got.Questions[0]
	if first.Text != "Capital of France?" || !first.Mandatory {
		t.Fatalf("unexpected first question: %+v", first)
	}
	if len(first.Options) != 2 {
		t.Fatalf("first question option count = %d, want 2", len(first.Options))
	}
	if first.Options[0].Text != "Paris" || !first.Options[0].IsCorrect {
		t.Fatalf("unexpected first option: %+v", first.Options[0])
	}
	if first.Options[1].IsCorrect {
		t.Fatalf("second option should not be correct: %+v", first.Options[1])
	}

	second := got.Questions[1]
	if second.Mandatory {
		t.Fatalf("mandatory must default to false: %+v", second)
	}
	if len(second.Options) != 3 {
		t.Fatalf("second question option count = %d, want 3", len(second.Options))
	}
}

func TestStorePublishedFalseRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	payload := samplePayload()
	payload.Published = boolPtr(false)

	created, err := store.CreateQuiz(ctx, payload)
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	if created.Published {
		t.Fatalf("expected published=false, got %+v", created)
	}

	got, err := store.GetQuiz(ctx, created.QuizID)
	if err != nil {
		t.Fatalf("GetQuiz failed: %v", err)
	}
	if got.Published {
		t.Fatalf("published=false did not survive the round trip: %+v", got)
	}
}

func TestStoreGetQuizNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetQuiz(context.Background(), 424242)
	if !errors.Is(err, quiz.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestStoreCreateQuizRollsBackOnFailure(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	// Induce a failure after the quiz and question inserts succeed.
	if _, err := store.db.ExecContext(ctx, `DROP TABLE options`); err != nil {
		t.Fatalf("drop options table: %v", err)
	}

	if _, err := store.CreateQuiz(ctx, samplePayload()); err == nil {
		t.Fatalf("expected CreateQuiz to fail without the options table")
	}

	var quizzes, questions int
	if err := store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quizzes`).Scan(&quizzes); err != nil {
		t.Fatalf("count quizzes: %v", err)
	}
	if err := store.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&questions); err != nil {
		t.Fatalf("count questions: %v", err)
	}
	if quizzes != 0 || questions != 0 {
		t.Fatalf("partial quiz visible after rollback: quizzes=%d questions=%d", quizzes, questions)
	}
}

func TestStoreQuizzesDoNotInterleave(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.CreateQuiz(ctx, samplePayload())
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	other := samplePayload()
	other.Title = "History"
	other.Questions = other.Questions[:1]
	second, err := store.CreateQuiz(ctx, other)
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	gotFirst, err := store.GetQuiz(ctx, first.QuizID)
	if err != nil {
		t.Fatalf("GetQuiz failed: %v", err)
	}
	gotSecond, err := store.GetQuiz(ctx, second.QuizID)
	if err != nil {
		t.Fatalf("GetQuiz failed: %v", err)
	}

	if len(gotFirst.Questions) != 2 || len(gotSecond.Questions) != 1 {
		t.Fatalf("rows interleaved between quizzes: first=%d second=%d",
			len(gotFirst.Questions), len(gotSecond.Questions))
	}
	for _, question := range gotSecond.Questions {
		for _, firstQuestion := range gotFirst.Questions {
			if question.QuestionID == firstQuestion.QuestionID {
				t.Fatalf("question %d shared between quizzes", question.QuestionID)
			}
		}
	}
}

// A quiz row without questions cannot be produced through CreateQuiz, but the
// left join still yields a single row with null question columns. The fold
// must degrade to an empty question list instead of crashing.
func TestStoreGetQuizWithoutQuestions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	result, err := store.db.ExecContext(
		ctx,
		`INSERT INTO quizzes (title, description, published, created_at_unix, updated_at_unix, published_at_unix)
		 VALUES ('empty', 'no questions', 1, 0, 0, 0)`,
	)
	if err != nil {
		t.Fatalf("insert bare quiz row: %v", err)
	}
	quizID, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("last insert id: %v", err)
	}

	got, err := store.GetQuiz(ctx, quizID)
	if err != nil {
		t.Fatalf("GetQuiz failed: %v", err)
	}
	if len(got.Questions) != 0 {
		t.Fatalf("expected empty question list, got %+v", got.Questions)
	}
}
