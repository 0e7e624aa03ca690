package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/advanderveer/onft/blk"
	"github.com/davecgh/go-spew/spew"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

var errNotVerified = errors.New("block did not verify")

// dumper prints the fields of a block rather than its short String form
var dumper = spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true}

func main() {
	subCmd, cfg, config, err := parseCommandLine(os.Args[1:])
	if err != nil {
		if ferr, ok := err.(*flags.Error); ok && ferr.Type == flags.ErrHelp {
			os.Exit(0)
		}

		os.Exit(1)
	}

	conf := DefaultConf()
	if cfg.Quiet {
		conf.LogWriter = ioutil.Discard
	}

	err = run(conf, subCmd, config)
	if err != nil {
		printErrorAndExit(err)
	}
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func run(conf *Conf, subCmd string, config interface{}) (err error) {
	c := &command{
		conf: conf,
		logs: log.New(conf.LogWriter, "", 0),
	}

	switch subCmd {
	case genesisSubCmd:
		return c.genesis(config.(*genesisConfig))
	case mintSubCmd:
		return c.mint(config.(*mintConfig))
	case verifySubCmd:
		return c.verify(config.(*verifyConfig))
	case inspectSubCmd:
		return c.inspect(config.(*inspectConfig))
	default:
		return errors.Errorf("unknown sub-command '%s'", subCmd)
	}
}

type command struct {
	conf *Conf
	logs *log.Logger
}

func (c *command) genesis(cfg *genesisConfig) (err error) {
	_, err = fmt.Fprintln(c.conf.Stdout, blk.NewGenesis().Hash.Hex())
	return
}

func (c *command) mint(cfg *mintConfig) (err error) {
	prev, err := blk.ParseHash(cfg.Prev)
	if err != nil {
		return errors.Wrap(err, "failed to parse --prev")
	}

	var data []byte
	if cfg.Data != nil {
		data = []byte(*cfg.Data)
	} else {
		data, err = ioutil.ReadAll(c.conf.Stdin)
		if err != nil {
			return errors.Wrap(err, "failed to read payload from stdin")
		}
	}

	b, err := blk.New(prev, data)
	if err != nil {
		c.logs.Printf("[ERRO] failed to mint block on %s: %v", prev, err)
		return err
	}

	p, err := b.MarshalBinary()
	if err != nil {
		return errors.Wrap(err, "failed to encode block")
	}

	c.logs.Printf("[INFO] minted block %s on %s with %d bytes of data", b, prev, len(b.Data))
	_, err = fmt.Fprintln(c.conf.Stdout, hex.EncodeToString(p))
	return
}

func (c *command) verify(cfg *verifyConfig) (err error) {
	prev, err := blk.ParseHash(cfg.Prev)
	if err != nil {
		return errors.Wrap(err, "failed to parse --prev")
	}

	b, err := c.readBlock()
	if err != nil {
		return err
	}

	ok, err := b.Verify(prev)
	if err != nil {
		return errors.Wrap(err, "failed to verify block")
	}

	if !ok {
		c.logs.Printf("[INFO] block %s did not verify on %s", b, prev)
		_, err = fmt.Fprintln(c.conf.Stdout, "not verified")
		if err != nil {
			return err
		}

		return errNotVerified
	}

	c.logs.Printf("[INFO] block %s verified on %s", b, prev)
	_, err = fmt.Fprintln(c.conf.Stdout, "verified")
	return
}

func (c *command) inspect(cfg *inspectConfig) (err error) {
	b, err := c.readBlock()
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(c.conf.Stdout, "hash: %s\n%s", b.Hash.Hex(), dumper.Sdump(b))
	return
}

func (c *command) readBlock() (b *blk.Block, err error) {
	in, err := ioutil.ReadAll(c.conf.Stdin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read block from stdin")
	}

	p, err := hex.DecodeString(string(bytes.TrimSpace(in)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode block hex")
	}

	b = &blk.Block{}
	err = b.UnmarshalBinary(p)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode block")
	}

	return
}
