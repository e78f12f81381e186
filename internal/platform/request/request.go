// Copyright (c) 2026 Readalong. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/readalong/internal/platform/apperr"
	"github.com/taibuivan/readalong/internal/platform/ctxutil"
	"github.com/taibuivan/readalong/internal/platform/sec"
	"github.com/taibuivan/readalong/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter (slug, ID) from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Claims extracts the authenticated reader claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetReader(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the reader claims.

Returns:
  - *sec.AuthClaims: The authenticated reader claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {

	// Get reader claims
	claims := ctxutil.GetReader(request.Context())

	// If the reader is not authenticated, return an error
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return claims, nil
}

/*
RequiredReader returns the identity of the currently logged-in reader.

The email issued by the identity provider is the stable, opaque reader
identity used throughout the ledger and snapshot stores.

Returns:
  - string: Reader identity (email)
  - error: apperr.Unauthorized if not authenticated
*/
func RequiredReader(request *http.Request) (string, error) {

	// Get reader claims
	claims, err := RequiredClaims(request)

	// If the reader is not authenticated, return an error
	if err != nil {
		return "", err
	}

	return claims.Email, nil
}
