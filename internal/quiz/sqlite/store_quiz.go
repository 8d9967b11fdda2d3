package sqlite

import (
	"context"
	"database/sql"
	"time"

	"quiz-builder/internal/quiz"
)

// CreateQuiz inserts a quiz and its whole question/option subtree in one
// transaction. The store assigns every identifier and all three timestamps.
// The question/option tree on the returned quiz is built from the insert
// results; only the quiz row itself is re-read before commit.
//
// Invariant: on any failure nothing is committed, so no partial quiz is ever
// visible to readers.
func (s *Store) CreateQuiz(ctx context.Context, payload *quiz.QuizPayload) (*quiz.Quiz, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	now := time.Now().UTC()

	published := false
	if payload.Published != nil {
		published = *payload.Published
	}

	result, err := tx.ExecContext(
		ctx,
		`INSERT INTO quizzes (title, description, published, created_at_unix, updated_at_unix, published_at_unix)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		payload.Title,
		payload.Description,
		published,
		now.UnixNano(),
		now.UnixNano(),
		now.UnixNano(),
	)
	if err != nil {
		return nil, err
	}
	quizID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	questions := make([]quiz.Question, 0, len(payload.Questions))
	for _, question := range payload.Questions {
		result, err := tx.ExecContext(
			ctx,
			`INSERT INTO questions (quiz_id, text, mandatory) VALUES (?, ?, ?)`,
			quizID,
			question.Text,
			question.Mandatory,
		)
		if err != nil {
			return nil, err
		}
		questionID, err := result.LastInsertId()
		if err != nil {
			return nil, err
		}

		options := make([]quiz.Option, 0, len(question.Options))
		for _, option := range question.Options {
			result, err := tx.ExecContext(
				ctx,
				`INSERT INTO options (question_id, text, is_correct) VALUES (?, ?, ?)`,
				questionID,
				option.Text,
				option.IsCorrect,
			)
			if err != nil {
				return nil, err
			}
			optionID, err := result.LastInsertId()
			if err != nil {
				return nil, err
			}
			options = append(options, quiz.Option{
				OptionID:  optionID,
				Text:      option.Text,
				IsCorrect: option.IsCorrect,
			})
		}

		questions = append(questions, quiz.Question{
			QuestionID: questionID,
			Text:       question.Text,
			Mandatory:  question.Mandatory,
			Options:    options,
		})
	}

	created, err := s.readQuizRow(ctx, tx, quizID)
	if err != nil {
		return nil, err
	}
	created.Questions = questions

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Store) readQuizRow(ctx context.Context, tx *sql.Tx, quizID int64) (*quiz.Quiz, error) {
	var (
		item        quiz.Quiz
		createdAt   int64
		updatedAt   int64
		publishedAt int64
	)
	err := tx.QueryRowContext(
		ctx,
		`SELECT quiz_id, title, description, published, created_at_unix, updated_at_unix, published_at_unix
		 FROM quizzes WHERE quiz_id = ?`,
		quizID,
	).Scan(&item.QuizID, &item.Title, &item.Description, &item.Published, &createdAt, &updatedAt, &publishedAt)
	if err != nil {
		return nil, err
	}

	item.CreatedAt = time.Unix(0, createdAt).UTC()
	item.UpdatedAt = time.Unix(0, updatedAt).UTC()
	item.PublishedAt = time.Unix(0, publishedAt).UTC()
	return &item, nil
}

// GetQuiz reconstructs a quiz from one left-join query. The query orders rows
// by question then option identifier; the fold below requires that ordering
// (rows of one question contiguous) and fails loudly when it is violated.
func (s *Store) GetQuiz(ctx context.Context, quizID int64) (*quiz.Quiz, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT qz.quiz_id, qz.title, qz.description, qz.published,
		        qz.created_at_unix, qz.updated_at_unix, qz.published_at_unix,
		        qs.question_id, qs.text, qs.mandatory,
		        op.option_id, op.text, op.is_correct
		 FROM quizzes qz
		 LEFT JOIN questions qs ON qs.quiz_id = qz.quiz_id
		 LEFT JOIN options op ON op.question_id = qs.question_id
		 WHERE qz.quiz_id = ?
		 ORDER BY qs.question_id ASC, op.option_id ASC`,
		quizID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		item            *quiz.Quiz
		currentQuestion int64
		seenQuestions   = make(map[int64]bool)
	)

	for rows.Next() {
		var (
			quizRow     quiz.Quiz
			createdAt   int64
			updatedAt   int64
			publishedAt int64
			questionID  sql.NullInt64
			questionTxt sql.NullString
			mandatory   sql.NullBool
			optionID    sql.NullInt64
			optionText  sql.NullString
			isCorrect   sql.NullBool
		)
		if err := rows.Scan(
			&quizRow.QuizID, &quizRow.Title, &quizRow.Description, &quizRow.Published,
			&createdAt, &updatedAt, &publishedAt,
			&questionID, &questionTxt, &mandatory,
			&optionID, &optionText, &isCorrect,
		); err != nil {
			return nil, err
		}

		if item == nil {
			quizRow.CreatedAt = time.Unix(0, createdAt).UTC()
			quizRow.UpdatedAt = time.Unix(0, updatedAt).UTC()
			quizRow.PublishedAt = time.Unix(0, publishedAt).UTC()
			quizRow.Questions = make([]quiz.Question, 0)
			item = &quizRow
		}

		if !questionID.Valid {
			// The quiz row joined against no questions. The write path makes
			// this unreachable, but the fold must not crash on it.
			continue
		}

		if len(item.Questions) == 0 || questionID.Int64 != currentQuestion {
			if seenQuestions[questionID.Int64] {
				return nil, quiz.ErrUnorderedRows
			}
			seenQuestions[questionID.Int64] = true
			currentQuestion = questionID.Int64
			item.Questions = append(item.Questions, quiz.Question{
				QuestionID: questionID.Int64,
				Text:       questionTxt.String,
				Mandatory:  mandatory.Bool,
				Options:    make([]quiz.Option, 0),
			})
		}

		if optionID.Valid {
			last := &item.Questions[len(item.Questions)-1]
			last.Options = append(last.Options, quiz.Option{
				OptionID:  optionID.Int64,
				Text:      optionText.String,
				IsCorrect: isCorrect.Bool,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if item == nil {
		return nil, quiz.ErrQuizNotFound
	}
	return item, nil
}
