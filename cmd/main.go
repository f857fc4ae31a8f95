// SPDX-License-Identifier: MIT
// SPDX-FileCopyrightText: 2023 wavebroker contributors
// SPDX-FileContributor: wavebroker

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/logrusorgru/aurora"

	mqtt "github.com/wavebroker/mqtt"
	"github.com/wavebroker/mqtt/hooks/auth"
	"github.com/wavebroker/mqtt/listeners"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML or JSON broker options file")
	flag.Parse()

	sigs := make(chan os.Signal, 1)
	done := make(chan bool, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		done <- true
	}()

	fmt.Println(aurora.Magenta("wavebroker initializing..."))

	opts, err := mqtt.LoadOptionsFile(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	server := mqtt.New(opts)

	_ = server.AddHook(new(auth.AllowHook), nil)

	tcp := listeners.NewTCP(listeners.Config{ID: "t1", Address: ":1883"})
	if err := server.AddListener(tcp); err != nil {
		log.Fatal(err)
	}

	ws := listeners.NewWebsocket(listeners.Config{ID: "ws1", Address: ":1882"})
	if err := server.AddListener(ws); err != nil {
		log.Fatal(err)
	}

	stats := listeners.NewHTTPStats(listeners.Config{ID: "stats", Address: ":8080"}, server.Info)
	if err := server.AddListener(stats); err != nil {
		log.Fatal(err)
	}

	go func() {
		if err := server.Serve(); err != nil {
			log.Fatal(err)
		}
	}()
	fmt.Println(aurora.BgMagenta("  Started!  "))

	<-done
	fmt.Println(aurora.BgRed("  Caught Signal  "))

	server.Close()
	fmt.Println(aurora.BgGreen("  Finished  "))
}
