/*
Package metrics wraps datadog-go to record counters and timers.
Naming convention:
- Internal process time: *.time
- Rejected request: *.rejection
- Error: *.err
*/
package metrics

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/x-xyz/mintstake/base/env"
	"github.com/x-xyz/mintstake/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// Option is functional parameter for metrics option
type Option func(*opt)

type opt struct {
	// default: true
	withPodName bool
}

// WithoutPodName drops the pod tag, which otherwise adds one custom metric
// per pod.
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// New creates a metric client prefixing every key with pkgName
func New(pkgName string, options ...Option) Service {
	o := opt{
		withPodName: true,
	}
	for _, option := range options {
		option(&o)
	}

	ddTags := []string{
		// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
		"host:",
		"env:" + viper.GetString("env_name"),
		"app:" + viper.GetString("app_name"),
	}
	if o.withPodName {
		ddTags = append(ddTags, "pod:"+env.PodName())
	}

	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: ddTags,
		},
	}
}

// Metrics prefixes keys with the package name and swallows panics from the
// statsd client.
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

const sampleRate = 1.0

func (mt *Metrics) recoverBump(key string, tags []string) {
	if err := recover(); err != nil {
		log.Log().WithFields(log.Fields{"key": mt.pkgName + "." + key, "tags": strings.Join(tags, "#"), "err": err}).Error("bump panic")
	}
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverBump(key, tags)
	mt.datadog.BumpSum(mt.pkgName+`.`+key, val, sampleRate, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverBump(key, tags)
	mt.datadog.BumpHistogram(mt.pkgName+`.`+key, val, sampleRate, tags...)
}

// BumpTime starts a timer and returns a value on which End() records it:
//
//	defer s.BumpTime("check.time").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		ddEnd: mt.datadog.BumpTime(mt.pkgName+`.`+key, sampleRate, tags...),
		recover: func() {
			mt.recoverBump(key, tags)
		},
	}
}

type timeTracker struct {
	ddEnd   Ender
	recover func()
}

func (t *timeTracker) End() {
	defer t.recover()
	t.ddEnd.End()
}
