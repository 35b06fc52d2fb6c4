// Package jwt provides JSON Web Token utilities for the Yookve API.
//
// The jwt package handles HS256 token signing, validation, and claims
// extraction for authentication.
//
// # Token Generation
//
// Sign tokens for authenticated users:
//
//	service, err := jwt.NewService(jwt.Config{
//	    Secret:         "secret-key",
//	    Issuer:         "yookve-api",
//	    ExpirationMins: 60,
//	})
//
//	token, err := service.Sign(jwt.Claims{
//	    Subject:  user.Username,
//	    UserID:   user.ID,
//	    Username: user.Username,
//	})
//
// # Token Validation
//
// Validate and extract claims:
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // Invalid or expired token
//	}
//	userID := claims.UserID
package jwt
