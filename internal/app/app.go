package app

import (
	"github.com/avelichko/wordbattle/internal/config"
	http_competition "github.com/avelichko/wordbattle/internal/delivery/http/competition"
	http_init "github.com/avelichko/wordbattle/internal/delivery/http/init"
	http_room "github.com/avelichko/wordbattle/internal/delivery/http/room"
	ws_competition "github.com/avelichko/wordbattle/internal/delivery/ws/competition"
	infra_pg_init "github.com/avelichko/wordbattle/internal/infra/postgres/init"
	infra_postgres_room "github.com/avelichko/wordbattle/internal/infra/postgres/room"
	infra_postgres_user "github.com/avelichko/wordbattle/internal/infra/postgres/user"
	infra_postgres_word "github.com/avelichko/wordbattle/internal/infra/postgres/word"
	infra_redis_init "github.com/avelichko/wordbattle/internal/infra/redis/init"
	infra_redis_membership "github.com/avelichko/wordbattle/internal/infra/redis/membership"
	"github.com/avelichko/wordbattle/internal/registry"
	service_invite "github.com/avelichko/wordbattle/internal/service/invite"
	usecase_competition "github.com/avelichko/wordbattle/internal/usecase/competition"
	usecase_room "github.com/avelichko/wordbattle/internal/usecase/room"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	roomRepository := infra_postgres_room.New(pgConn)
	userDirectory := infra_postgres_user.New(pgConn)
	questionProvider := infra_postgres_word.New(pgConn)
	membershipIndex := infra_redis_membership.New(redisConn)

	connRegistry := registry.New(nil)

	roomUC := usecase_room.New(roomRepository, userDirectory, membershipIndex, connRegistry)
	competitionUC := usecase_competition.New(
		roomRepository,
		questionProvider,
		userDirectory,
		membershipIndex,
		connRegistry,
		0, /* default inter-round delay */
	)

	bot := service_invite.MustEstablishBot(cfg.TelegramBot.Token)
	inviteService := service_invite.New(bot, userDirectory, roomRepository, connRegistry)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_room.New(roomUC))
	controllerPool.Add(http_competition.New(competitionUC, inviteService))
	controllerPool.Add(ws_competition.New(connRegistry, roomUC))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
