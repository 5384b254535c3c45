package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/driftcode/minifeed/config"
	"github.com/driftcode/minifeed/internal/session"
	"github.com/driftcode/minifeed/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	sessions    session.Store
	esClient    *elasticsearch.Client
	uidTokens   *helpers.UIDTokenManager
)

func SetConfig(c *config.Config)  { cfg = c }
func GetConfig() *config.Config   { return cfg }
func SetLogger(l *logrus.Logger)  { logger = l }
func GetLogger() *logrus.Logger   { return logger }
func SetPGPool(p *pgxpool.Pool)   { pgPool = p }
func GetPGPool() *pgxpool.Pool    { return pgPool }
func SetRedis(r *redis.Client)    { redisClient = r }
func GetRedis() *redis.Client     { return redisClient }
func SetSessions(s session.Store) { sessions = s }
func GetSessions() session.Store  { return sessions }

func SetES(c *elasticsearch.Client) { esClient = c }
func GetES() *elasticsearch.Client  { return esClient }

func SetUIDTokens(m *helpers.UIDTokenManager) { uidTokens = m }
func GetUIDTokens() *helpers.UIDTokenManager  { return uidTokens }
