package configs

import (
	mqtt "github.com/wavebroker/mqtt"
	"github.com/wavebroker/mqtt/hooks/auth"
	"github.com/wavebroker/mqtt/listeners"
)

func ConfigureServerWithDefault() (*mqtt.Server, error) {

	server := mqtt.New(nil)
	_ = server.AddHook(new(auth.AllowHook), nil)

	tcp := listeners.NewTCP(listeners.Config{ID: "t1", Address: ":1883"})
	err := server.AddListener(tcp)
	if err != nil {
		return nil, err
	}

	ws := listeners.NewWebsocket(listeners.Config{ID: "ws1", Address: ":1882"})
	err = server.AddListener(ws)
	if err != nil {
		return nil, err
	}

	stats := listeners.NewHTTPStats(listeners.Config{ID: "stats", Address: ":8080"}, server.Info)
	err = server.AddListener(stats)
	if err != nil {
		return nil, err
	}

	return server, nil
}
