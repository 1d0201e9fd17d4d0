package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // driver PostgreSQL
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"tourism_backend/internal/config"
)

// Clients regroupe toutes les connexions externes. Construit une seule
// fois par main, injecté partout : pas d'état global de module.
type Clients struct {
	Postgres *sqlx.DB
	Mongo    *mongo.Database
	Redis    *redis.Client
	Elastic  *elasticsearch.Client
	MinIO    *minio.Client

	mongoClient *mongo.Client
}

// Connect initialise toutes les bases. PostgreSQL et MongoDB sont les
// sources de vérité : leur absence est fatale. Redis, Elasticsearch et
// MinIO sont dégradables : on garde le client et on avertit.
func Connect(ctx context.Context) (*Clients, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	c := &Clients{}

	// 1. PostgreSQL
	pg, err := connectPostgres()
	if err != nil {
		return nil, fmt.Errorf("échec connexion PostgreSQL: %w", err)
	}
	c.Postgres = pg

	// 2. MongoDB
	if err := c.connectMongo(ctx); err != nil {
		return nil, fmt.Errorf("échec connexion MongoDB: %w", err)
	}

	// 3. Redis (cache : jamais bloquant)
	c.connectRedis(ctx)

	// 4. Elasticsearch (recherche : repli SQL si absent)
	c.connectElastic()

	// 5. MinIO (stockage photos)
	c.connectMinIO(ctx)

	log.Println("✅ Toutes les bases de données sont connectées")
	return c, nil
}

// Close ferme proprement toutes les connexions. Appelé par main à l'arrêt.
func (c *Clients) Close(ctx context.Context) {
	if c.Postgres != nil {
		if err := c.Postgres.Close(); err != nil {
			log.Printf("⚠️ Erreur fermeture PostgreSQL: %v", err)
		} else {
			log.Println("🔌 Connexion PostgreSQL fermée")
		}
	}
	if c.mongoClient != nil {
		if err := c.mongoClient.Disconnect(ctx); err != nil {
			log.Printf("⚠️ Erreur fermeture MongoDB: %v", err)
		} else {
			log.Println("🔌 Connexion MongoDB fermée")
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("⚠️ Erreur fermeture Redis: %v", err)
		} else {
			log.Println("🔌 Connexion Redis fermée")
		}
	}
}

func connectPostgres() (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Getenv("DB_HOST", "localhost"),
		config.Getenv("DB_PORT", "5432"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASS"),
		config.Getenv("DB_NAME", "tourism"),
		config.Getenv("DB_SSLMODE", "disable"),
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	log.Println("✅ Connecté à PostgreSQL")
	return db, nil
}

func (c *Clients) connectMongo(ctx context.Context) error {
	uri := config.Getenv("MONGO_URI", "mongodb://localhost:27017")
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	c.mongoClient = client
	c.Mongo = client.Database(config.Getenv("MONGO_DB", "tourism"))
	log.Println("✅ Connecté à MongoDB")
	return nil
}

func (c *Clients) connectRedis(ctx context.Context) {
	c.Redis = redis.NewClient(&redis.Options{
		Addr:         config.Getenv("REDIS_HOST", "localhost:6379"),
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := c.Redis.Ping(ctx).Err(); err != nil {
		// Le cache est dérivé : on continue sans, PostgreSQL fait foi
		log.Printf("⚠️ Redis injoignable, cache désactivé: %v", err)
		return
	}
	log.Println("✅ Connecté à Redis")
}

func (c *Clients) connectElastic() {
	cfg := elasticsearch.Config{
		Addresses: []string{config.Getenv("ELASTIC_URL", "http://localhost:9200")},
		Username:  os.Getenv("ELASTIC_USER"),
		Password:  os.Getenv("ELASTIC_PASSWORD"),
	}

	client, err := elasticsearch.NewClient(cfg)
	if err != nil {
		log.Printf("⚠️ Erreur création client Elasticsearch: %v", err)
		return
	}

	res, err := client.Info()
	if err != nil {
		log.Printf("⚠️ Elasticsearch injoignable, recherche en repli SQL: %v", err)
	} else {
		res.Body.Close()
		log.Println("✅ Connecté à Elasticsearch")
	}
	c.Elastic = client
}

func (c *Clients) connectMinIO(ctx context.Context) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️ MINIO_ENDPOINT non configuré, upload de photos désactivé")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		log.Printf("⚠️ Erreur connexion MinIO: %v", err)
		return
	}

	bucketName := config.Getenv("MINIO_BUCKET", "tourism-photos")
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		log.Printf("⚠️ Erreur vérification bucket MinIO: %v", err)
	} else if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			log.Printf("⚠️ Erreur création bucket MinIO: %v", err)
		} else {
			log.Println("🪣 Bucket créé :", bucketName)
		}
	} else {
		log.Println("🪣 Bucket MinIO déjà présent :", bucketName)
	}

	c.MinIO = client
	log.Println("✅ Connecté à MinIO :", endpoint)
}

// Migrate applique les fichiers migrations/*.sql dans l'ordre lexical.
func (c *Clients) Migrate(dir string) error {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("lecture migration %s: %w", file, err)
		}
		if _, err := c.Postgres.Exec(string(content)); err != nil {
			return fmt.Errorf("migration %s: %w", file, err)
		}
		log.Printf("✅ Migration %s appliquée", filepath.Base(file))
	}
	return nil
}
