/*
Package metrics wraps datadog-go statsd.

Naming convention:
  - internal process time: *.time
  - external latency: *.latency
  - error: *.err
*/
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/storefront/base/env"
	"github.com/x-xyz/storefront/base/log"
)

const (
	ddPort        = 8125
	bufferMetrics = 10
	sampleRate    = 1.0
)

var (
	initOnce sync.Once
	client   statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// an empty datadog_host sends everything to the debug log instead
func initClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		client = &LogClient{}
		return
	}
	addr := fmt.Sprintf("%s:%d", host, ddPort)
	c, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("statsd.NewBuffered failed, metrics go to log")
		client = &LogClient{}
		return
	}
	log.Log().WithField("addr", addr).Info("connected to datadog agent")
	client = c
}

type Ender interface {
	End()
}

type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	// BumpTime starts a timer; call End on the result to record it:
	//
	//	defer met.BumpTime("fetch.time").End()
	BumpTime(key string, tags ...string) Ender
}

type metrics struct {
	pkgName string
	tags    []string
}

// New creates a metrics service prefixing every key with pkgName
func New(pkgName string) Service {
	return &metrics{
		pkgName: pkgName,
		tags: []string{
			"host:",
			"pod:" + env.PodName(),
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

func (m *metrics) key(k string) string {
	return m.pkgName + "." + k
}

// tags are given as flat key/value pairs
func (m *metrics) withTags(tags []string) []string {
	res := make([]string, len(m.tags), len(m.tags)+len(tags)/2)
	copy(res, m.tags)
	for i := 0; i+1 < len(tags); i += 2 {
		res = append(res, tags[i]+":"+tags[i+1])
	}
	return res
}

func (m *metrics) report(fn string, key string, err error) {
	if err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "func": fn}).Error("bump failed")
	}
}

func (m *metrics) BumpAvg(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	m.report("BumpAvg", key, client.Gauge(m.key(key), val, m.withTags(tags), sampleRate))
}

func (m *metrics) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	m.report("BumpSum", key, client.Count(m.key(key), int64(val), m.withTags(tags), sampleRate))
}

func (m *metrics) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	m.report("BumpHistogram", key, client.Histogram(m.key(key), val, m.withTags(tags), sampleRate))
}

func (m *metrics) BumpTime(key string, tags ...string) Ender {
	initOnce.Do(initClient)
	return &timer{
		m:     m,
		key:   key,
		tags:  m.withTags(tags),
		start: time.Now(),
	}
}

type timer struct {
	m     *metrics
	key   string
	tags  []string
	start time.Time
}

func (t *timer) End() {
	ms := float64(time.Since(t.start)) / float64(time.Millisecond)
	t.m.report("BumpTime", t.key, client.TimeInMilliseconds(t.m.key(t.key), ms, t.tags, sampleRate))
}
