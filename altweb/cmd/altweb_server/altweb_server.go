package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/kidoman/embd"

	"github.com/jimsynz/mpl311512/altweb"
	"github.com/jimsynz/mpl311512/i2c/embdi2c"
	"github.com/jimsynz/mpl311512/mpl3115a2"
)

func main() {
	var (
		addr      = flag.String("addr", fmt.Sprintf(":%d", altweb.DefaultPort), "address to serve websocket clients on")
		bus       = flag.Int("bus", 1, "I2C bus number the sensor is attached to")
		barometer = flag.Bool("barometer", false, "run in barometer mode instead of altimeter")
		period    = flag.Duration("period", time.Second, "time between samples")
	)
	flag.Parse()

	i2cbus := embd.NewI2CBus(byte(*bus))
	defer embd.CloseI2C()

	dev, err := mpl3115a2.New(embdi2c.New(i2cbus, mpl3115a2.Address))
	if err != nil {
		log.Fatalf("couldn't acquire MPL3115A2: %s", err)
	}

	mode := mpl3115a2.Altimeter
	if *barometer {
		mode = mpl3115a2.Barometer
	}

	room := altweb.NewRoom()
	listener, err := altweb.NewListener(dev, room, mode, *period)
	if err != nil {
		log.Fatalf("couldn't initialize MPL3115A2: %s", err)
	}

	go room.Run()
	go listener.Run()
	defer listener.Close()

	http.Handle("/altweb", room)
	log.Println("altweb: serving on", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		log.Fatal("ListenAndServe:", err)
	}
}
