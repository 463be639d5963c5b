package hashgrid

import (
	"testing"

	"github.com/hengadev/errsx"
	"github.com/stretchr/testify/assert"
)

func TestArgon2Params_Validate(t *testing.T) {
	tests := []struct {
		name     string
		params   Argon2Params
		wantErr  bool
		errCount int
		errKeys  []string // expected error fields
	}{
		{
			name: "valid parameters",
			params: Argon2Params{
				Memory:      19456,
				Iterations:  2,
				Parallelism: 1,
				SaltLength:  16,
				KeyLength:   32,
			},
			wantErr: false,
		},
		{
			name: "all parameters out of range",
			params: Argon2Params{
				Memory:      1000,
				Iterations:  1,
				Parallelism: 0,
				SaltLength:  8,
				KeyLength:   16,
			},
			wantErr:  true,
			errCount: 5,
			errKeys:  []string{"memory", "iterations", "parallelism", "saltLength", "keyLength"},
		},
		{
			name: "memory too low",
			params: Argon2Params{
				Memory:      1000,
				Iterations:  2,
				Parallelism: 1,
				SaltLength:  16,
				KeyLength:   32,
			},
			wantErr:  true,
			errCount: 1,
			errKeys:  []string{"memory"},
		},
		{
			name: "iterations too low",
			params: Argon2Params{
				Memory:      19456,
				Iterations:  1,
				Parallelism: 1,
				SaltLength:  16,
				KeyLength:   32,
			},
			wantErr:  true,
			errCount: 1,
			errKeys:  []string{"iterations"},
		},
		{
			name: "key length not AES-256 sized",
			params: Argon2Params{
				Memory:      19456,
				Iterations:  2,
				Parallelism: 1,
				SaltLength:  16,
				KeyLength:   64,
			},
			wantErr:  true,
			errCount: 1,
			errKeys:  []string{"keyLength"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			errs, ok := err.(errsx.Map)
			if !ok {
				t.Fatal("expected error to be of type errsx.Map")
			}
			assert.Len(t, errs, tt.errCount)
			for _, key := range tt.errKeys {
				if _, exists := errs[key]; !exists {
					t.Errorf("expected key '%s' in errsx.Map", key)
				}
			}
		})
	}
}

func TestDefaultArgon2Params_Valid(t *testing.T) {
	assert.NoError(t, DefaultArgon2Params().Validate())
}
