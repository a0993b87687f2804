package infra_postgres_word

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avelichko/wordbattle/internal/model"
	usecase_competition "github.com/avelichko/wordbattle/internal/usecase/competition"
)

// Driver serves quiz questions straight from the words tables: a random
// word in the source language plus shuffled answer options in the
// target language.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type wordDTO struct {
	ID            uuid.UUID `db:"id"`
	Name          string    `db:"name"`
	TranslationID uuid.UUID `db:"translation_id"`
}

type translationDTO struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
}

const distractorCount = 2

func (d *Driver) RandomQuestion(ctx context.Context, languageFromID, languageToID int64) (model.Question, error) {
	const randomWord = `
		SELECT id, name, translation_id
		FROM words
		WHERE language_id = $1
		ORDER BY random()
		LIMIT 1
	`

	var word wordDTO
	if err := d.db.GetContext(ctx, &word, randomWord, languageFromID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Question{}, usecase_competition.ErrQuestionNotFound
		}
		return model.Question{}, err
	}

	const correctTranslation = `
		SELECT id, name
		FROM translation_words
		WHERE id = $1
	`
	var correct translationDTO
	if err := d.db.GetContext(ctx, &correct, correctTranslation, word.TranslationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Question{}, usecase_competition.ErrQuestionNotFound
		}
		return model.Question{}, err
	}

	const randomDistractors = `
		SELECT id, name
		FROM translation_words
		WHERE to_language_id = $1 AND id != $2
		ORDER BY random()
		LIMIT $3
	`
	var distractors []translationDTO
	if err := d.db.SelectContext(ctx, &distractors, randomDistractors, languageToID, correct.ID, distractorCount); err != nil {
		return model.Question{}, err
	}

	options := make([]model.WordInfo, 0, len(distractors)+1)
	for _, dto := range distractors {
		options = append(options, model.WordInfo{ID: dto.ID, Name: dto.Name})
	}
	options = append(options, model.WordInfo{ID: correct.ID, Name: correct.Name})
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return model.Question{
		WordForTranslate: model.WordInfo{ID: word.ID, Name: word.Name},
		OtherWords:       options,
	}, nil
}

// Translation returns the correct translation for a word, used to judge
// submitted answers.
func (d *Driver) Translation(ctx context.Context, wordID uuid.UUID) (model.WordInfo, error) {
	const query = `
		SELECT tw.id, tw.name
		FROM translation_words tw
		JOIN words w ON w.translation_id = tw.id
		WHERE w.id = $1
	`

	var dto translationDTO
	if err := d.db.GetContext(ctx, &dto, query, wordID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.WordInfo{}, usecase_competition.ErrQuestionNotFound
		}
		return model.WordInfo{}, err
	}
	return model.WordInfo{ID: dto.ID, Name: dto.Name}, nil
}
