package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/bidbay/goapi/base/log"
)

const (
	// ddRate is the rate to pass metrics to the datadog agent. 1 means always
	ddRate = 1
	// buffer this many counters before sending to the statsd agent
	bufferMetrics = 10
)

var (
	initOnce sync.Once
	ddClient statsCli
)

type statsCli interface {
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// noopCli keeps metrics calls harmless when no agent is configured
type noopCli struct{}

func (noopCli) Count(string, int64, []string, float64) error                { return nil }
func (noopCli) Histogram(string, float64, []string, float64) error          { return nil }
func (noopCli) TimeInMilliseconds(string, float64, []string, float64) error { return nil }

func initDDClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		ddClient = noopCli{}
		return
	}
	addr := fmt.Sprintf("%s:%d", host, 8125)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	cli, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
	}
	ddClient = cli
}

// Ender ends a BumpTime measurement
type Ender interface {
	End()
}

// Service bumps metrics under a package namespace
type Service interface {
	// BumpSum bumps the sum for the given key
	BumpSum(key string, val float64, tags ...string)

	// BumpHistogram bumps the histogram for the given key
	BumpHistogram(key string, val float64, tags ...string)

	// BumpTime measures elapsed time under the given key:
	//     defer s.BumpTime("my.function").End()
	BumpTime(key string, tags ...string) Ender
}

type Metrics struct {
	pkgName string
}

// New returns a metrics service namespaced by pkgName
func New(pkgName string) Service {
	initOnce.Do(initDDClient)
	return &Metrics{pkgName: pkgName}
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	if err := ddClient.Count(mt.pkgName+"."+key, int64(val), tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpSum"}).Error("Bump fail")
	}
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	if err := ddClient.Histogram(mt.pkgName+"."+key, val, tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": "BumpHistogram"}).Error("Bump fail")
	}
}

type timeEnder struct {
	key   string
	tags  []string
	start time.Time
}

func (te *timeEnder) End() {
	dur := float64(time.Since(te.start).Milliseconds())
	if err := ddClient.TimeInMilliseconds(te.key, dur, te.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": te.key, "val": dur, "func": "BumpTime"}).Error("Bump fail")
	}
}

func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeEnder{
		key:   mt.pkgName + "." + key,
		tags:  tags,
		start: time.Now(),
	}
}
