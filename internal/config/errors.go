package config

import "errors"

var (
	ErrJWTSecretRequired       = errors.New("jwt.secret is required")
	ErrInvalidPort             = errors.New("app.port must be between 1 and 65535")
	ErrInvalidAccessExpiration = errors.New("jwt.access_expiration is not a valid duration")
	ErrUnknownActivityStore    = errors.New("activity.store must be postgres or mongodb")
	ErrMongoRequired           = errors.New("mongo.uri and mongo.database are required for the mongodb activity store")
)
