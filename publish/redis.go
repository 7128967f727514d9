// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bitmark-inc/auctiond/messagebus"
)

const (
	defaultRedisChannel = "auctiond.events"
	redisConnectTimeout = 5 * time.Second
)

// RedisConfiguration - pub/sub destination
type RedisConfiguration struct {
	Address  string `gluamapper:"address" json:"address"`
	Password string `gluamapper:"password" json:"password"`
	Database int    `gluamapper:"database" json:"database"`
	Channel  string `gluamapper:"channel" json:"channel"`
}

// Redis pub/sub sink
//
// every event goes to "<channel>" and to "<channel>:<command>"
type redisSink struct {
	client  *redis.Client
	channel string
}

func newRedisSink(configuration *RedisConfiguration) (*redisSink, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     configuration.Address,
		Password: configuration.Password,
		DB:       configuration.Database,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); nil != err {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return newRedisSinkFromClient(client, configuration.Channel), nil
}

func newRedisSinkFromClient(client *redis.Client, channel string) *redisSink {
	if "" == channel {
		channel = defaultRedisChannel
	}
	return &redisSink{
		client:  client,
		channel: channel,
	}
}

func (r *redisSink) Name() string {
	return "redis"
}

func (r *redisSink) Publish(ctx context.Context, m *messagebus.Message) error {
	data, err := json.Marshal(m)
	if nil != err {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Publish(ctx, r.channel, data)
	pipe.Publish(ctx, r.channel+":"+m.Command, data)
	_, err = pipe.Exec(ctx)
	return err
}

func (r *redisSink) Close() error {
	return r.client.Close()
}
