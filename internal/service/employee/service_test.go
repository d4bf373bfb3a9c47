package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vemre-aremu/hrpay-backend-go/internal/domain/employee"
)

type stubEmployeeRepository struct {
	employee.EmployeeRepository
	lastCode string
}

func (s *stubEmployeeRepository) LastEmployeeCode(_ context.Context) (string, error) {
	return s.lastCode, nil
}

func TestNextEmployeeCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lastCode string
		want     string
	}{
		{"first employee", "", "VAE-0001"},
		{"increments suffix", "VAE-0042", "VAE-0043"},
		{"suffix grows past four digits", "VAE-9999", "VAE-10000"},
		{"keeps counting above four digits", "VAE-10000", "VAE-10001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &EmployeeServiceImpl{
				EmployeeRepository: &stubEmployeeRepository{lastCode: tt.lastCode},
			}

			got, err := svc.nextEmployeeCode(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextEmployeeCodeMalformed(t *testing.T) {
	t.Parallel()

	svc := &EmployeeServiceImpl{
		EmployeeRepository: &stubEmployeeRepository{lastCode: "EMP-12"},
	}

	_, err := svc.nextEmployeeCode(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed employee code")
}
