package altweb

import (
	"encoding/json"
	"log"
	"time"

	"github.com/jimsynz/mpl311512/mpl3115a2"
	"github.com/jimsynz/mpl311512/sensors"
)

// The device satisfies both narrow reader capabilities.
var (
	_ sensors.AltitudeReader = (*mpl3115a2.Device)(nil)
	_ sensors.PressureReader = (*mpl3115a2.Device)(nil)
)

// Listener polls one MPL3115A2, forwards each decoded sample to a room and
// publishes it on the sensors channels. It is the exclusive owner of the
// device's connection while running, which satisfies the driver's
// serialization contract.
type Listener struct {
	// Sensor carries the channels samples are republished on for in-process
	// consumers.
	Sensor sensors.AltimeterSensor

	dev     *mpl3115a2.Device
	room    *Room
	mode    mpl3115a2.Mode
	period  time.Duration
	started time.Time
	cC      chan *sensors.AltimeterData
	cBuf    chan *sensors.AltimeterData
	stop    chan bool
}

// NewListener initializes the device with the default configuration for the
// given mode and returns a listener publishing to room every period.
func NewListener(dev *mpl3115a2.Device, room *Room, mode mpl3115a2.Mode, period time.Duration) (*Listener, error) {
	cfg := mpl3115a2.DefaultConfig()
	cfg.Mode = mode
	if err := dev.Init(cfg); err != nil {
		return nil, err
	}
	l := &Listener{
		dev:    dev,
		room:   room,
		mode:   mode,
		period: period,
		cC:     make(chan *sensors.AltimeterData),
		cBuf:   make(chan *sensors.AltimeterData, sampleBufSize),
		stop:   make(chan bool),
	}
	l.Sensor = sensors.AltimeterSensor{C: l.cC, CBuf: l.cBuf}
	return l, nil
}

// sampleBufSize is the depth of the buffered sample channel.
const sampleBufSize = 256

// Run polls until Close is called. Transport errors are logged and the poll
// continues; the device needs no recovery beyond the next successful read.
func (l *Listener) Run() {
	l.started = time.Now()
	clock := time.NewTicker(l.period)
	defer clock.Stop()

	for {
		select {
		case <-clock.C:
			frame, err := l.sample()
			if err != nil {
				log.Printf("altweb warning: error reading sensor data: %s", err)
				continue
			}
			msg, err := json.Marshal(frame)
			if err != nil {
				log.Printf("altweb warning: error marshaling frame: %s", err)
				continue
			}
			l.room.Forward(msg)
			l.publish(frame)
		case <-l.stop:
			return
		}
	}
}

// publish hands the sample to in-process consumers without ever blocking
// the poll loop.
func (l *Listener) publish(frame *Frame) {
	data := &sensors.AltimeterData{
		Altitude:    frame.Altitude,
		Pressure:    frame.Pressure,
		Temperature: frame.Temperature,
		T:           time.Since(l.started),
	}
	select {
	case l.cC <- data:
	default:
	}
	select {
	case l.cBuf <- data:
	default:
	}
}

// Close stops the polling loop.
func (l *Listener) Close() {
	l.stop <- true
}

func (l *Listener) sample() (*Frame, error) {
	frame := &Frame{
		T:    time.Since(l.started).Seconds(),
		Mode: l.mode.String(),
	}

	var err error
	if l.mode == mpl3115a2.Barometer {
		frame.Pressure, err = l.dev.Pressure()
	} else {
		frame.Altitude, err = l.dev.Altitude()
	}
	if err != nil {
		return nil, err
	}

	if frame.Temperature, err = l.dev.Temperature(); err != nil {
		return nil, err
	}
	if frame.FIFOSamples, err = l.dev.FIFOSampleCount(); err != nil {
		return nil, err
	}
	return frame, nil
}
