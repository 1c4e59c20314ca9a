package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifySchema(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(sqlmock.Sqlmock)
		wantErr error
		errText string
	}{
		{
			name: "all columns present",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(columnsQuery).
					WithArgs("users").
					WillReturnRows(sqlmock.NewRows([]string{"column_name"}).
						AddRow("id").AddRow("name").AddRow("email"))
			},
		},
		{
			name: "extra columns are fine",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(columnsQuery).
					WithArgs("users").
					WillReturnRows(sqlmock.NewRows([]string{"column_name"}).
						AddRow("id").AddRow("name").AddRow("email").AddRow("created_at"))
			},
		},
		{
			name: "missing email",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(columnsQuery).
					WithArgs("users").
					WillReturnRows(sqlmock.NewRows([]string{"column_name"}).
						AddRow("id").AddRow("name"))
			},
			wantErr: ErrSchemaMismatch,
			errText: "missing columns email",
		},
		{
			name: "table absent",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(columnsQuery).
					WithArgs("users").
					WillReturnRows(sqlmock.NewRows([]string{"column_name"}))
			},
			wantErr: ErrSchemaMismatch,
			errText: "missing columns id, name, email",
		},
		{
			name: "query failure",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(columnsQuery).
					WithArgs("users").
					WillReturnError(errors.New("connection reset"))
			},
			errText: "failed to query users columns: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)

			err = VerifySchema(context.Background(), db)
			if tt.errText == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errText)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
