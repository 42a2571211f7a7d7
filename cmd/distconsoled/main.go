package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"

	"go.uber.org/zap"

	"distconsole/internal/app"
	"distconsole/internal/crypto"
	"distconsole/internal/domain"
	"distconsole/internal/keystore"
	"distconsole/internal/protocol/console"
)

// canned maps commands to fixed replies; anything else is echoed back.
var canned = map[string]string{
	"show version": "dnsdist 1.7.0",
	"uptime":       "0d 0h 0m",
	"ping":         "pong",
}

func main() {
	listen := flag.String("listen", "127.0.0.1:5900", "address to listen on")
	keyB64 := flag.String("key", "", "pre-shared key (base64); generated if empty")
	keyFile := flag.String("key-file", "", "file holding the base64 pre-shared key")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log, err := app.NewLogger(*verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	key, err := resolveKey(*keyB64, *keyFile)
	if err != nil {
		log.Fatal("resolve key", zap.Error(err))
	}

	ln, err := net.Listen("tcp", *listen)
	if err != nil {
		log.Fatal("listen", zap.Error(err))
	}
	fmt.Printf("Listening on %s\n", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Fatal("accept", zap.Error(err))
		}
		go serve(conn, key, log)
	}
}

// resolveKey loads or generates the server key. A generated key is printed so
// a client can connect.
func resolveKey(keyB64, keyFile string) (domain.Key, error) {
	if keyB64 != "" {
		return crypto.ParseKey(keyB64)
	}
	if keyFile != "" {
		return keystore.Load(keyFile)
	}
	key, err := crypto.GenerateKey()
	if err != nil {
		return domain.Key{}, err
	}
	fmt.Printf("Generated key: %s\n", crypto.FormatKey(key))
	return key, nil
}

// serve runs one console session: handshake, then one reply per received
// command until the client disconnects.
func serve(conn net.Conn, key domain.Key, log *zap.Logger) {
	remote := conn.RemoteAddr().String()

	sess, err := console.Open(conn, key)
	if err != nil {
		log.Debug("handshake failed", zap.String("remote", remote), zap.Error(err))
		conn.Close()
		return
	}
	defer sess.Close()
	log.Debug("session open", zap.String("remote", remote))

	for {
		cmd, err := sess.Receive()
		if err != nil {
			var decodeErr *domain.DecodeError
			if errors.As(err, &decodeErr) {
				log.Debug("dropping session after decode failure", zap.String("remote", remote), zap.Error(err))
			}
			return
		}

		reply, ok := canned[cmd]
		if !ok {
			reply = cmd
		}
		if err := sess.Send(reply); err != nil {
			log.Debug("send failed", zap.String("remote", remote), zap.Error(err))
			return
		}
	}
}
