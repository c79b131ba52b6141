package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/storefront/base/backoff"
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/goroutine"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain/action"
	"github.com/x-xyz/storefront/domain/notification"
	"github.com/x-xyz/storefront/service/chain"
)

const (
	ReasonReverted = "transaction reverted"
	ReasonTimeout  = "transaction not mined in time"
)

type WatcherConfig struct {
	Chain       chain.Client
	Repo        action.Repo
	Notifier    notification.Notifier
	ExplorerUrl string
	// PollStart and PollLimit bound the exponential receipt polling interval
	PollStart   time.Duration
	PollLimit   time.Duration
	MaxAttempts int
}

type watcher struct {
	chain       chain.Client
	repo        action.Repo
	notifier    notification.Notifier
	explorerUrl string
	pollStart   time.Duration
	pollLimit   time.Duration
	maxAttempts int
}

func NewWatcher(cfg *WatcherConfig) action.Watcher {
	w := &watcher{
		chain:       cfg.Chain,
		repo:        cfg.Repo,
		notifier:    cfg.Notifier,
		explorerUrl: cfg.ExplorerUrl,
		pollStart:   cfg.PollStart,
		pollLimit:   cfg.PollLimit,
		maxAttempts: cfg.MaxAttempts,
	}
	if w.pollStart <= 0 {
		w.pollStart = 2 * time.Second
	}
	if w.pollLimit <= 0 {
		w.pollLimit = 30 * time.Second
	}
	if w.maxAttempts <= 0 {
		w.maxAttempts = 40
	}
	return w
}

// Watch polls the receipt of record in the background and stores the outcome
func (w *watcher) Watch(c ctx.Ctx, record *action.Record) {
	r := *record
	bg := ctx.WithValue(ctx.Detach(c), "actionId", r.Id)
	goroutine.RecoverableGo(func() {
		w.watch(bg, &r)
	}, goroutine.WithName("action-watcher"))
}

func (w *watcher) watch(c ctx.Ctx, r *action.Record) {
	status, reason := w.wait(c, r)
	now := timeNow()
	updater := action.Updater{Status: &status, UpdatedAt: &now}
	if reason != "" {
		updater.Reason = &reason
	}
	if err := w.repo.Update(c, r.Id, updater); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"status": status,
		}).Error("repo.Update failed")
	}

	r.Status, r.Reason, r.UpdatedAt = status, reason, now
	if err := w.notifier.Notify(c, w.noticeOf(r)); err != nil {
		c.WithField("err", err).Warn("notifier.Notify failed")
	}
}

// wait returns the final status of the transaction
func (w *watcher) wait(c ctx.Ctx, r *action.Record) (action.Status, string) {
	b := backoff.NewExponential(w.pollStart, w.pollLimit)
	for b.Attempts() < w.maxAttempts {
		if err := b.Wait(c); err != nil {
			return action.StatusFailed, err.Error()
		}
		receipt, err := w.chain.TransactionReceipt(c, r.TxHash)
		if err != nil {
			// not mined yet or a transient node error
			c.WithFields(log.Fields{
				"err":     err,
				"txHash":  r.TxHash,
				"attempt": b.Attempts(),
			}).Debug("chain.TransactionReceipt failed")
			continue
		}
		if receipt.Status == types.ReceiptStatusSuccessful {
			return action.StatusConfirmed, ""
		}
		return action.StatusFailed, ReasonReverted
	}
	return action.StatusFailed, ReasonTimeout
}

func (w *watcher) noticeOf(r *action.Record) notification.Notice {
	toast := action.ToastOf(r)
	fields := []notification.Field{
		{Name: "Listing", Value: r.ListingId},
		{Name: "Account", Value: string(r.Account)},
		{Name: "Status", Value: string(r.Status)},
	}
	if r.BidValue != "" {
		fields = append(fields, notification.Field{Name: "Bid", Value: r.BidValue})
	}
	return notification.Notice{
		Title:       fmt.Sprintf("%s %s", toast.Icon, toast.Message),
		Description: string(r.TxHash),
		Url:         fmt.Sprintf("%s/tx/%s", strings.TrimRight(w.explorerUrl, "/"), r.TxHash),
		Fields:      fields,
	}
}
