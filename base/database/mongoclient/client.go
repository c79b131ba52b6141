package mongoclient

import (
	"context"
	"crypto/tls"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/x-xyz/storefront/base/log"
)

const (
	socketTimeout  = 30 * time.Second
	connectTimeout = 10 * time.Second
)

// Client wraps mongo.Client with the database it serves
type Client struct {
	DbName string
	*mongo.Client
}

type Config struct {
	Uri         string
	DbName      string
	EnableSSL   bool
	MaxPoolSize uint64
}

// MustConnect panics when the database is unreachable
func MustConnect(cfg Config) *Client {
	cli, err := Connect(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"dbName": cfg.DbName, "err": err}).Panic("fail to connect mongo")
	}
	return cli
}

func Connect(cfg Config) (*Client, error) {
	opts := options.Client().
		ApplyURI(cfg.Uri).
		SetSocketTimeout(socketTimeout).
		SetRetryWrites(true).
		SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(cfg.MaxPoolSize)
	}
	if cfg.EnableSSL {
		opts.SetTLSConfig(&tls.Config{})
	}

	c, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(c, opts)
	if err != nil {
		log.Log().WithFields(log.Fields{"dbName": cfg.DbName, "err": err}).Error("mongo.Connect failed")
		return nil, err
	}
	if err := client.Ping(c, readpref.Primary()); err != nil {
		log.Log().WithFields(log.Fields{"dbName": cfg.DbName, "err": err}).Error("mongo ping failed")
		return nil, err
	}

	log.Log().WithField("db", cfg.DbName).Info("mongo connected")
	return &Client{DbName: cfg.DbName, Client: client}, nil
}

func (c *Client) Collection(name string) *mongo.Collection {
	return c.Database(c.DbName).Collection(name)
}
