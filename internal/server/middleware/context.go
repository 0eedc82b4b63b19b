package middleware

import (
	"github.com/MicahParks/keyfunc/v3"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

type AppUser struct {
	UserID      int32
	Role        string
	Permissions []string
}

type App struct {
	DBConn         *pgxpool.Pool
	Key            *keyfunc.Keyfunc
	S3             *s3.Client
	MasterAPIKey   string
	MasterUserID   int32
	MasterUserRole string
}

type AppContext struct {
	echo.Context
	App  *App
	User *AppUser
}

func AppContextMiddleware(
	db *pgxpool.Pool,
	key *keyfunc.Keyfunc,
	s3 *s3.Client,
	masterAPIKey string,
	masterUserID int32,
	masterUserRole string,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			app := &App{
				DBConn:         db,
				Key:            key,
				S3:             s3,
				MasterAPIKey:   masterAPIKey,
				MasterUserID:   masterUserID,
				MasterUserRole: masterUserRole,
			}
			cc := &AppContext{c, app, nil}
			return next(cc)
		}
	}
}
