// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/auctiond/account"
)

type metadata struct {
	connect string
	caller  *account.Account
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "auction-cli"
	app.Usage = "client for the auctiond JSON-RPC service"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			EnvVar: "AUCTION_CLI_CONNECT",
			Usage:  " auctiond host/IP and port `HOST:PORT`",
		},
		cli.StringFlag{
			Name:   "caller, a",
			Value:  "",
			EnvVar: "AUCTION_CLI_CALLER",
			Usage:  " calling identity `ACCOUNT`",
		},
	}

	keyFlag := func(usage string) cli.Flag {
		return cli.Uint64Flag{
			Name:  "key, k",
			Value: 0,
			Usage: usage,
		}
	}
	listFlags := []cli.Flag{
		cli.Uint64Flag{
			Name:  "start, s",
			Value: 0,
			Usage: " start from key `KEY`",
		},
		cli.IntFlag{
			Name:  "count, n",
			Value: 20,
			Usage: " maximum records to output `COUNT`",
		},
	}
	paidBidFlags := []cli.Flag{
		cli.StringFlag{
			Name:  "currency, u",
			Value: "",
			Usage: "*payment currency `CURRENCY`",
		},
		cli.Uint64Flag{
			Name:  "amount, m",
			Value: 0,
			Usage: "*bid amount `NUMBER`",
		},
		cli.StringFlag{
			Name:  "description, d",
			Value: "",
			Usage: " bid description `STRING`",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "create-proposal",
			Usage:     "open a proposal owned by the caller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: "*proposal description `STRING`",
				},
			},
			Action: runCreateProposal,
		},
		{
			Name:      "vote",
			Usage:     "vote on a proposal",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				keyFlag("*proposal `KEY`"),
				cli.StringFlag{
					Name:  "choice, x",
					Value: "",
					Usage: "*vote `CHOICE` [approve|reject|pass]",
				},
			},
			Action: runVote,
		},
		{
			Name:      "close-proposal",
			Usage:     "stop voting on a proposal",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{keyFlag("*proposal `KEY`")},
			Action:    runCloseProposal,
		},
		{
			Name:      "create-auction",
			Usage:     "open an auction item owned by the caller",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*auction title `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " auction description `STRING`",
				},
				cli.Uint64Flag{
					Name:  "start-price, p",
					Value: 0,
					Usage: " starting price `NUMBER`",
				},
			},
			Action: runCreateAuction,
		},
		{
			Name:      "bid",
			Usage:     "bid on an auction item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				keyFlag("*auction `KEY`"),
				cli.Uint64Flag{
					Name:  "amount, m",
					Value: 0,
					Usage: "*bid amount `NUMBER`",
				},
			},
			Action: runPlaceBid,
		},
		{
			Name:      "increase-bid",
			Usage:     "raise the winning bid on an auction item",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				keyFlag("*auction `KEY`"),
				cli.Uint64Flag{
					Name:  "amount, m",
					Value: 0,
					Usage: "*new bid amount `NUMBER`",
				},
			},
			Action: runIncreaseBid,
		},
		{
			Name:      "withdraw-bid",
			Usage:     "retract the winning bid on an auction item",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{keyFlag("*auction `KEY`")},
			Action:    runWithdrawBid,
		},
		{
			Name:      "end-auction",
			Usage:     "close an auction item",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{keyFlag("*auction `KEY`")},
			Action:    runEndAuction,
		},
		{
			Name:      "paid-bid",
			Usage:     "pay for and record a bid against an auction item",
			ArgsUsage: "\n   (* = required)",
			Flags:     append([]cli.Flag{keyFlag("*auction `KEY`")}, paidBidFlags...),
			Action:    runPaidBid,
		},
		{
			Name:      "create-item",
			Usage:     "list an item for payment backed bidding",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "title, t",
					Value: "",
					Usage: "*item title `STRING`",
				},
				cli.StringFlag{
					Name:  "description, d",
					Value: "",
					Usage: " item description `STRING`",
				},
				cli.StringFlag{
					Name:  "currency, u",
					Value: "",
					Usage: "*price currency `CURRENCY`",
				},
				cli.Uint64Flag{
					Name:  "amount, m",
					Value: 0,
					Usage: " minimum price `NUMBER`",
				},
				cli.StringFlag{
					Name:  "start-time",
					Value: "",
					Usage: " bidding opens at `TIME`",
				},
				cli.StringFlag{
					Name:  "end-time",
					Value: "",
					Usage: " bidding closes at `TIME`",
				},
			},
			Action: runCreateItem,
		},
		{
			Name:      "item-bid",
			Usage:     "pay for and place a bid on an item",
			ArgsUsage: "\n   (* = required)",
			Flags:     append([]cli.Flag{keyFlag("*item `KEY`")}, paidBidFlags...),
			Action:    runItemBid,
		},
		{
			Name:      "close-item",
			Usage:     "close an item and assign its new owner",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{keyFlag("*item `KEY`")},
			Action:    runCloseItem,
		},
		{
			Name:      "deposit",
			Usage:     "credit an escrow balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " `ACCOUNT` to credit, default is the caller",
				},
				cli.StringFlag{
					Name:  "currency, u",
					Value: "",
					Usage: "*`CURRENCY` to credit",
				},
				cli.Uint64Flag{
					Name:  "amount, m",
					Value: 0,
					Usage: "*amount to credit `NUMBER`",
				},
			},
			Action: runDeposit,
		},
		{
			Name:      "balance",
			Usage:     "display an escrow balance",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " `ACCOUNT` to show, default is the caller",
				},
				cli.StringFlag{
					Name:  "currency, u",
					Value: "",
					Usage: "*`CURRENCY` to show",
				},
			},
			Action: runBalance,
		},
		{
			Name:      "show",
			Usage:     "display one record",
			ArgsUsage: "KIND\n   KIND = proposal|auction|item|bid",
			Flags:     []cli.Flag{keyFlag("*record `KEY`")},
			Action:    runShow,
		},
		{
			Name:   "most-bidded",
			Usage:  "display the active auction item with the highest bid",
			Action: runMostBidded,
		},
		{
			Name:      "list",
			Usage:     "list a page of records",
			ArgsUsage: "KIND\n   KIND = proposals|auctions|items",
			Flags:     listFlags,
			Action:    runList,
		},
		{
			Name:   "info",
			Usage:  "display auctiond status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display auction-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		connect := c.GlobalString("connect")
		if "" == connect {
			return ErrMissingConnect
		}

		var caller *account.Account
		if s := c.GlobalString("caller"); "" != s {
			a, err := account.FromBase58(s)
			if nil != err {
				return err
			}
			caller = a
		}

		if verbose {
			fmt.Fprintf(e, "connect: %q\n", connect)
		}

		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: connect,
				caller:  caller,
				verbose: verbose,
				e:       e,
				w:       w,
			},
		}
		return nil
	}

	return app
}
