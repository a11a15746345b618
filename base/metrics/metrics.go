package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/lendapi/base/log"
)

const (
	// ddRate is the rate to pass metrics to datadog agent. 1 means always
	ddRate = 1
	// buffer 10 counters before sending to statsd agent
	bufferMetrics = 10

	ddPort = 8125
)

var (
	initOnce = sync.Once{}
	ddClient *statsd.Client
)

func initDDClient() {
	host := viper.GetString("datadog_host")
	addr := fmt.Sprintf("%s:%d", host, ddPort)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")

	var err error
	ddClient, err = statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
	}
}

// Service bumps metrics under a fixed namespace
type Service interface {
	// BumpSum bumps the sum for the given key
	BumpSum(key string, val float64, tags ...string)
	// BumpTime starts a timer; call End() on the return value to record it
	BumpTime(key string, tags ...string) interface{ End() }
}

type impl struct {
	namespace string
}

// New returns a metrics service prefixing every key with namespace
func New(namespace string) Service {
	return &impl{namespace: namespace}
}

func (im *impl) key(key string) string {
	return im.namespace + "." + key
}

func (im *impl) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initDDClient)
	if err := ddClient.Count(im.key(key), int64(val), parseTag(tags), ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key}).Error("BumpSum fail")
	}
}

func (im *impl) BumpTime(key string, tags ...string) interface{ End() } {
	initOnce.Do(initDDClient)
	return &timeTracker{
		start: time.Now(),
		key:   im.key(key),
		tags:  parseTag(tags),
	}
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	elapsed := float64(time.Since(t.start)) / float64(time.Millisecond)
	if err := ddClient.TimeInMilliseconds(t.key, elapsed, t.tags, ddRate); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": t.key}).Error("BumpTime fail")
	}
}

// parseTag pairs up "key", "value" arguments into datadog "key:value" tags
func parseTag(kvs []string) []string {
	tags := make([]string, 0, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		tags = append(tags, kvs[i]+":"+kvs[i+1])
	}
	return tags
}
