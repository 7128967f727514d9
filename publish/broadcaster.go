// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"context"
	"encoding/json"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/auctiond/messagebus"
	"github.com/bitmark-inc/auctiond/util"
	"github.com/bitmark-inc/auctiond/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
)

// ZeroMQ PUB sink
//
// each event is two frames: command then JSON message
type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

func newBroadcaster(log *logger.L, configuration *Configuration) (*broadcaster, error) {

	privateKey, err := zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
	if nil != err {
		log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
		return nil, err
	}
	publicKey, err := zmqutil.ReadPublicKeyFile(configuration.PublicKey)
	if nil != err {
		log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
		return nil, err
	}

	c, err := util.NewConnections(configuration.Broadcast)
	if nil != err {
		log.Errorf("ip and port error: %s", err)
		return nil, err
	}

	if err := zmqutil.StartAuthentication(); nil != err {
		log.Errorf("zmq authentication error: %s", err)
		return nil, err
	}

	brdc := &broadcaster{
		log: log,
	}
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, c)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return nil, err
	}

	return brdc, nil
}

func (brdc *broadcaster) Name() string {
	return "zmq"
}

func (brdc *broadcaster) Publish(ctx context.Context, m *messagebus.Message) error {
	data, err := json.Marshal(m)
	if nil != err {
		return err
	}
	if err := send(brdc.socket4, m.Command, data); nil != err {
		return err
	}
	return send(brdc.socket6, m.Command, data)
}

func (brdc *broadcaster) Close() error {
	if nil != brdc.socket4 {
		brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		brdc.socket6.Close()
	}
	return nil
}

func send(socket *zmq.Socket, command string, data []byte) error {
	if nil == socket {
		return nil
	}
	_, err := socket.Send(command, zmq.SNDMORE|zmq.DONTWAIT)
	if nil != err {
		return err
	}
	_, err = socket.SendBytes(data, zmq.DONTWAIT)
	return err
}
