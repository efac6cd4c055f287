package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jimsynz/mpl311512/i2c/periphi2c"
	"github.com/jimsynz/mpl311512/mpl3115a2"
)

func main() {
	var (
		bus       = flag.String("bus", "", "periph I2C bus name, empty for the first available")
		barometer = flag.Bool("barometer", false, "read pressure instead of altitude")
		period    = flag.Duration("period", time.Second, "time between samples")
	)
	flag.Parse()

	conn, closeBus, err := periphi2c.Open(*bus, uint16(mpl3115a2.Address))
	if err != nil {
		log.Fatalf("couldn't open I2C bus: %s", err)
	}
	defer closeBus()

	dev, err := mpl3115a2.New(conn)
	if err != nil {
		log.Fatalf("couldn't acquire MPL3115A2: %s", err)
	}

	cfg := mpl3115a2.DefaultConfig()
	if *barometer {
		cfg.Mode = mpl3115a2.Barometer
	}
	if err := dev.Init(cfg); err != nil {
		log.Fatalf("couldn't initialize MPL3115A2: %s", err)
	}

	fmt.Println("t,value,temp")
	start := time.Now()
	clock := time.NewTicker(*period)
	for {
		<-clock.C

		var value float64
		if *barometer {
			value, err = dev.Pressure()
		} else {
			value, err = dev.Altitude()
		}
		if err != nil {
			log.Printf("warning: error reading sensor: %s", err)
			continue
		}

		temp, err := dev.Temperature()
		if err != nil {
			log.Printf("warning: error reading temperature: %s", err)
			continue
		}

		fmt.Printf("%v,%5.1f,%3.2f\n", time.Since(start).Round(time.Millisecond), value, temp)
	}
}
