package main

import (
	"log/slog"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// @title Arena 45 Backend API
// @version 1.0
// @description Bookings, contact requests, programs, testimonials and members for the Arena 45 studio.
// @contact.name Arena 45
// @contact.email info@arena45.com
// @host localhost:3001
// @BasePath /
func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			l := &fxevent.SlogLogger{Logger: logger}
			l.UseLogLevel(slog.LevelDebug)
			return l
		}),
		ConfigModule,
		DatabaseModule,
		ServiceModule,
		HTTPModule,
	).Run()
}
