// Package mocks provides shared function-field mocks for tests.
//
// Each mock implements one interface. Setting a XxxFn field overrides the
// method; otherwise the mock returns its default fields.
//
//	jwtService := &mocks.MockJWTService{
//	    GenerateTokenFn: func(ctx context.Context, userID uuid.UUID) (string, error) {
//	        return "mocked-token", nil
//	    },
//	}
package mocks
