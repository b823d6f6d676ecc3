package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dentara/dentara/internal/application/usecase"
	"github.com/dentara/dentara/internal/domain/model"
)

func TestPatientSearchSanitizesQuery(t *testing.T) {
	clinicID := uuid.New()

	cases := []struct {
		name  string
		query string
		want  string
	}{
		{"strips lone wildcard", "%", ""},
		{"strips embedded metacharacters", `ma%ri_a\`, "maria"},
		{"strips punctuation", `silva, j. ("ze")`, "silva j ze"},
		{"plain query passes through", "joao", "joao"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			repo := &mockPatientRepository{
				searchFunc: func(_ context.Context, _ uuid.UUID, query string, _ int) ([]model.Patient, error) {
					got = query
					return nil, nil
				},
			}
			uc := usecase.NewPatientUseCase(repo, &mockEventPublisher{}, testLogger())

			_, err := uc.Search(context.Background(), clinicID, tc.query)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
