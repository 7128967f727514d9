// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bitmark-inc/auctiond/auction"
	"github.com/bitmark-inc/auctiond/background"
	"github.com/bitmark-inc/auctiond/bidding"
	"github.com/bitmark-inc/auctiond/configuration"
	"github.com/bitmark-inc/auctiond/messagebus"
	"github.com/bitmark-inc/auctiond/payment"
	"github.com/bitmark-inc/auctiond/proposal"
	"github.com/bitmark-inc/auctiond/publish"
	"github.com/bitmark-inc/auctiond/query"
	"github.com/bitmark-inc/auctiond/records"
	"github.com/bitmark-inc/auctiond/rpc"
	"github.com/bitmark-inc/auctiond/rpc/server"
	"github.com/bitmark-inc/auctiond/storage"
	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "env-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'e'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	envFile := ""
	if len(options["env-file"]) > 0 {
		envFile = options["env-file"][0]
	}
	variables, err := configuration.Variables(envFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read environment file: %q  error: %s", program, envFile, err)
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// data commands only read the database
	if len(arguments) > 0 && processDataCommand(log, arguments, theConfiguration) {
		return
	}

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database)

	// connection info
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "Publishing", theConfiguration.Publishing)

	// start the data storage
	log.Info("initialise storage")
	store, err := storage.Open(theConfiguration.Database.Name, storage.ReadWrite)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer store.Close()

	maps := query.Maps{
		Proposals:    storage.NewMap[*records.Proposal](store, store.Pool.Proposals),
		AuctionItems: storage.NewMap[*records.AuctionItem](store, store.Pool.AuctionItems),
		Items:        storage.NewMap[*records.Item](store, store.Pool.Items),
		Bids:         storage.NewMap[*records.Bid](store, store.Pool.Bids),
	}

	bus := messagebus.New(theConfiguration.EventQueueSize)

	// start up the publishing background processes
	// before any ledger can emit an event
	publisher, err := publish.New(logger.New("publish"), &theConfiguration.Publishing, bus)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publisher.Stop()

	// ledgers
	log.Info("initialise ledgers")
	escrow := payment.New(logger.New("payment"), store)
	auctions := auction.New(logger.New("auction"), maps.AuctionItems, bus)
	proposals := proposal.New(logger.New("proposal"), maps.Proposals, bus)
	timeout := time.Duration(theConfiguration.Payment.Timeout) * time.Second
	bids := bidding.New(logger.New("bidding"), auctions, maps.Bids, maps.Items, escrow, timeout, bus)

	handlers := &server.Handlers{
		Store:     store,
		Bus:       bus,
		Auctions:  auctions,
		Proposals: proposals,
		Bidding:   bids,
		Queries:   query.New(maps),
		Escrow:    escrow,
	}

	// start up the rpc background processes
	rpcServer, err := rpc.Start(&theConfiguration.ClientRPC, handlers, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpcServer.Stop()

	// if memory logging enabled
	if len(options["memory-stats"]) > 0 {
		stats := background.Start(background.Processes{
			&memstats{log: logger.New("memory")},
		}, nil)
		defer stats.Stop()
	}

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}
