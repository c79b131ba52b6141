package repository

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/action"
	"github.com/x-xyz/storefront/service/query"
)

const defaultLimit = 100

type impl struct {
	query query.Mongo
}

func New(query query.Mongo) action.Repo {
	return &impl{query}
}

func (im *impl) Insert(ctx ctx.Ctx, record *action.Record) error {
	record.Account = record.Account.ToLower()

	err := im.query.Insert(ctx, domain.TableActions, record)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"record": record,
		}).Error("failed to query.Insert")
		return err
	}
	return nil
}

func (im *impl) FindOne(ctx ctx.Ctx, id string) (*action.Record, error) {
	res := action.Record{}
	err := im.query.FindOne(ctx, domain.TableActions, bson.M{"_id": id}, &res)
	if errors.Is(err, query.ErrNotFound) {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to query.FindOne")
		return nil, err
	}
	return &res, nil
}

func (im *impl) FindAll(ctx ctx.Ctx, options ...action.FindAllOptions) ([]*action.Record, error) {
	opts, err := action.GetFindAllOptions(options...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("failed to action.GetFindAllOptions")
		return nil, err
	}

	query := bson.M{}
	if opts.Account != nil {
		query["account"] = *opts.Account
	}
	if opts.Status != nil {
		query["status"] = *opts.Status
	}
	limit := defaultLimit
	if opts.Limit != nil && *opts.Limit > 0 {
		limit = int(*opts.Limit)
	}

	res := []*action.Record{}
	err = im.query.Search(ctx, domain.TableActions, 0, limit, "-createdAt", query, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("failed to query.Search")
		return nil, err
	}
	return res, nil
}

func (im *impl) Update(ctx ctx.Ctx, id string, updater action.Updater) error {
	err := im.query.Patch(ctx, domain.TableActions, bson.M{"_id": id}, updater)
	if errors.Is(err, query.ErrNotFound) {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to query.Patch")
		return err
	}
	return nil
}
