// Package api contains all endpoints available
package api

import (
	"campusswap/marketplace-api/auth"
	"campusswap/marketplace-api/aws"
	"campusswap/marketplace-api/db"
	"campusswap/marketplace-api/middleware"
	"campusswap/marketplace-api/notify"
	"campusswap/marketplace-api/service"
	"campusswap/marketplace-api/store"
	"context"
	"fmt"
	"time"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var cacheStore = persist.NewMemoryStore(time.Minute)

type API struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Users    *store.Users
	Items    *store.Items
	Events   *store.Events
	Verifier auth.TokenVerifier
	S3       *aws.S3Client
	Notifier notify.Notifier
	Reminder *service.Reminder
}

func NewRouter() (*API, error) {
	a := &API{
		Verifier: auth.NewGoogleVerifier(),
		Notifier: notify.Noop{},
	}

	conn, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	a.DB = conn
	a.Users = store.NewUsers(conn)
	a.Items = store.NewItems(conn)
	a.Events = store.NewEvents(conn)

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("cors.origins"),
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if claims, ok := c.Get(middleware.UserKey); ok {
					fields = append(fields, zap.String("userEmail", claims.(*auth.Claims).Email))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.RedirectFixedPath = true

	a.registerRoutes()

	if viper.GetString("aws.bucket") != "" {
		s3, err := aws.NewS3()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize S3 client, %w", err)
		}

		a.S3 = s3
	} else {
		zap.L().Warn("No S3 bucket configured, uploads are disabled")
	}

	if viper.GetBool("notifications.enabled") {
		fcm, err := notify.NewFCM(context.Background())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize FCM client, %w", err)
		}

		a.Notifier = fcm
	}

	if viper.GetBool("reminders.enabled") {
		a.Reminder = service.NewReminder(a.Events, a.Notifier)
		if err := a.Reminder.Start(); err != nil {
			return nil, fmt.Errorf("failed to start reminder job, %w", err)
		}
	}

	return a, nil
}

// registerRoutes wires the HTTP surface. Split out from NewRouter so tests can
// mount the same routes over their own dependencies.
func (a *API) registerRoutes() {
	session := middleware.NewSessionMiddleware()
	bodyLimit := middleware.BodySizeLimiter(1 << 20)

	listCache := func(c *gin.Context) { c.Next() }
	if secs := viper.GetInt("app.list_cache_seconds"); secs > 0 {
		listCache = cache.CacheByRequestURI(cacheStore, time.Second*time.Duration(secs))
	}

	main := a.Router.Group("/api")
	{
		// HEAD /api/heartbeat		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)
	}

	authGroup := main.Group("/auth", bodyLimit)
	{
		// POST /api/auth/google	-> Exchanges a Google ID token for a session
		authGroup.POST("/google", a.AuthGoogle)

		// GET /api/auth/verify		-> Re-issues a fresh session from the stored profile
		authGroup.GET("/verify", session, a.AuthVerify)

		// POST /api/auth/logout	-> Instructs the client to discard the session
		authGroup.POST("/logout", a.AuthLogout)

		// GET|POST /api/auth/upload	-> Returns a time-limited S3 upload URL
		authGroup.GET("/upload", session, a.Upload)
		authGroup.POST("/upload", session, a.Upload)
	}

	items := main.Group("/items", bodyLimit)
	{
		// GET /api/items?cat=		-> Lists items, optionally by category
		items.GET("", listCache, a.ItemList)

		// POST /api/items		-> Creates an item
		items.POST("", session, a.ItemCreate)

		// PATCH /api/items/:id		-> Sparse-patches an item, ownership-enforced
		items.PATCH("/:id", session, a.ItemUpdate)

		// PATCH /api/items/:id/live	-> Toggles liveness, ownership-enforced
		items.PATCH("/:id/live", session, a.ItemToggleLive)

		// DELETE /api/items/:id	-> Deletes an item, ownership-enforced
		items.DELETE("/:id", session, a.ItemDelete)
	}

	events := main.Group("/events", bodyLimit)
	{
		// GET /api/events?cat=		-> Lists events, optionally by category
		events.GET("", listCache, a.EventList)

		// POST /api/events		-> Creates an event
		events.POST("", session, a.EventCreate)

		// PATCH /api/events/:id/notifications	-> Registers a push token for the reminder
		events.PATCH("/:id/notifications", session, a.EventNotifications)
	}

	user := main.Group("/user", bodyLimit)
	{
		// GET /api/user/items		-> Lists the caller's posted items
		user.GET("/items", session, a.UserItems)

		// GET /api/user/favorites	-> Lists the caller's favorite item ids
		user.GET("/favorites", session, a.UserFavorites)

		// POST /api/user/favorites	-> Toggles a favorite
		user.POST("/favorites", session, a.UserToggleFavorite)

		// POST /api/user/token		-> Registers a push delivery token
		user.POST("/token", session, a.UserSetToken)

		// GET /api/user/hasFcmToken	-> Checks whether a push token is registered
		user.GET("/hasFcmToken", session, a.UserHasToken)

		// PATCH /api/user/updatePhoneNumber	-> Updates the contact number, cascades to items
		user.PATCH("/updatePhoneNumber", session, a.UserUpdatePhone)

		// POST /api/user/registerOrUpdate	-> Upserts the profile from a Google ID token
		user.POST("/registerOrUpdate", a.UserRegisterOrUpdate)

		// GET /api/user/checkLogin	-> Echoes the decoded identity
		user.GET("/checkLogin", session, a.UserCheckLogin)
	}
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}
