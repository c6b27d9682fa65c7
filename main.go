package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getsentry/sentry-go"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"googlemaps.github.io/maps"

	"github.com/vitalio/triage-api/api"
	"github.com/vitalio/triage-api/external/medtext"
	"github.com/vitalio/triage-api/geo"
	"github.com/vitalio/triage-api/schema"
	"github.com/vitalio/triage-api/store"
)

var (
	server *api.Server
	ormDB  *gorm.DB
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("triage")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	var mongoStore store.MongoStore

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if ormDB != nil {
			log.Info("Shutting down report archive")
			if err := ormDB.Close(); err != nil {
				log.Error(err)
			}
		}

		if mongoStore != nil {
			mongoStore.Close()
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Report archive in postgres
	var archive *store.ReportArchive
	if conn := viper.GetString("orm.conn"); conn != "" {
		var err error
		ormDB, err = gorm.Open("postgres", conn)
		if err != nil {
			log.Panic(err)
		}

		archive = store.NewReportArchive(ormDB)
		if err := archive.Migrate(); err != nil {
			log.Panic(err)
		}
		log.WithField("prefix", "init").Info("Initialized report archive")
	}

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(context.Background())
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}

	mongoStore = store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))

	if viper.GetBool("mongo.seed") {
		schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
		if err := mongoStore.SeedProviders(context.Background()); err != nil {
			log.Error(err)
		}
	}

	// Location resolver via google maps geocoding
	var resolver geo.LocationResolver
	if apiKey := viper.GetString("geocoding.apikey"); apiKey != "" {
		mapClient, err := maps.NewClient(maps.WithAPIKey(apiKey))
		if err != nil {
			log.Panic(err)
		}
		resolver = geo.NewGeocodingLocationResolver(mapClient)
		log.WithField("prefix", "init").Info("Initialized location resolver")
	}

	// Medical text analyzer client
	httpClient := &http.Client{
		Timeout: 10 * time.Second,
	}
	analyzer := medtext.New(viper.GetString("medtext.endpoint"), httpClient)

	// Init http server
	server = api.NewServer(mongoStore, archive, analyzer, resolver)
	log.WithField("prefix", "init").Info("Initialized http server")

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
