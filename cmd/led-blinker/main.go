// Command led-blinker drives an LED on a timed on/off cycle, publishes
// toggle events to MQTT, and serves a live status dashboard over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/keegan/led-blinker/internal/blink"
	"github.com/keegan/led-blinker/internal/led"
	"github.com/keegan/led-blinker/internal/mqtt"
	"github.com/keegan/led-blinker/internal/status"
	"github.com/keegan/led-blinker/internal/timer"
	"github.com/keegan/led-blinker/internal/web"
)

// consoleDemoDuration is how long console mode runs when -duration is not given.
const consoleDemoDuration = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "Path to YAML config file (explicit flags override file values)")
	on := flag.Duration("on", time.Second, "LED on duration")
	off := flag.Duration("off", 500*time.Millisecond, "LED off duration")
	tick := flag.Duration("tick", 50*time.Millisecond, "Update interval")
	broker := flag.String("broker", "tcp://192.168.1.200:1883", "MQTT broker address")
	heartbeat := flag.Duration("heartbeat", 15*time.Minute, "Heartbeat interval (0 to disable)")
	chip := flag.String("chip", led.DefaultChip, "GPIO chip device name")
	line := flag.Int("line", led.DefaultLine, "BCM line number for the LED")
	httpAddr := flag.String("http", ":8080", "HTTP status address (empty to disable)")
	console := flag.Bool("console", false, "Render the LED to the terminal instead of GPIO")
	duration := flag.Duration("duration", 0, "Exit after this long (0 runs until signalled; console mode defaults to 10s)")

	flag.Parse()

	opts := options{
		on:        *on,
		off:       *off,
		tick:      *tick,
		heartbeat: *heartbeat,
		broker:    *broker,
		httpAddr:  *httpAddr,
		chip:      *chip,
		line:      *line,
		console:   *console,
		duration:  *duration,
	}

	if *configPath != "" {
		cfg, err := loadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("fatal: %v", err)
		}
		set := make(map[string]bool)
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		opts.applyFile(cfg, set)
	}

	if opts.console {
		if err := runConsole(opts, os.Stdout); err != nil {
			log.Fatalf("fatal: %v", err)
		}
		return
	}

	if err := run(opts); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}

func run(opts options) error {
	// Initialize the LED output line
	pin, err := led.NewRealPin(opts.chip, opts.line)
	if err != nil {
		return fmt.Errorf("init led: %w", err)
	}
	defer pin.Close()

	driver := blink.NewDriver(pin, uint32(opts.on.Milliseconds()), uint32(opts.off.Milliseconds()))

	// Initialize MQTT
	publisher := mqtt.NewRealPublisher(opts.broker, "led-blinker")
	defer publisher.Close()

	// Initialize status tracker (before STARTUP so snapshot is available)
	tracker := status.NewTracker(time.Now(), status.Config{
		OnMs:        opts.on.Milliseconds(),
		OffMs:       opts.off.Milliseconds(),
		TickMs:      opts.tick.Milliseconds(),
		HeartbeatMs: opts.heartbeat.Milliseconds(),
		Broker:      opts.broker,
		HTTPAddr:    opts.httpAddr,
	})
	tracker.SetHardware(&status.HardwareInfo{
		Mode: "gpio",
		Chip: opts.chip,
		Line: opts.line,
	})

	// Publish startup event announcing the blink configuration
	startupEvent := mqtt.SystemEvent{
		Timestamp: time.Now(),
		Event:     "STARTUP",
		Retained:  true,
		Config: &mqtt.SystemConfig{
			OnMs:        opts.on.Milliseconds(),
			OffMs:       opts.off.Milliseconds(),
			TickMs:      opts.tick.Milliseconds(),
			HeartbeatMs: opts.heartbeat.Milliseconds(),
			Broker:      opts.broker,
		},
	}
	if err := publisher.PublishSystem(startupEvent); err != nil {
		log.Printf("failed to publish startup event: %v", err)
	} else {
		log.Printf("published startup event")
	}

	// Websocket hub for live dashboard updates
	hub := web.NewHub()
	defer hub.Close()

	// Start HTTP status server
	if opts.httpAddr != "" {
		srv := web.New(opts.httpAddr, tracker, hub)
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("http server error: %v", err)
			}
		}()
		defer srv.Shutdown(context.Background())
		log.Printf("http status server listening on %s", opts.httpAddr)
	}

	log.Printf("started: on=%v off=%v tick=%v broker=%s heartbeat=%v",
		opts.on, opts.off, opts.tick, opts.broker, opts.heartbeat)

	clk := timer.NewRealTimer()

	ticker := time.NewTicker(opts.tick)
	defer ticker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	var deadline <-chan time.Time
	if opts.duration > 0 {
		dt := time.NewTimer(opts.duration)
		defer dt.Stop()
		deadline = dt.C
	}

	return runLoop(driver, publisher, publisher, tracker, hub, clk, opts.heartbeat, time.Now, ticker.C, deadline, sigCh)
}

func runLoop(driver *blink.Driver, publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, hub *web.Hub, clk timer.Timer, heartbeat time.Duration, now func() time.Time, tick, deadline <-chan time.Time, sig <-chan os.Signal) error {
	startTime := now()
	lastHeartbeat := startTime
	ctl := driver.Controller()

	for {
		select {
		case s := <-sig:
			log.Printf("received %v, shutting down", s)
			signalName := "UNKNOWN"
			if s == syscall.SIGINT {
				signalName = "SIGINT"
			} else if s == syscall.SIGTERM {
				signalName = "SIGTERM"
			}
			publishShutdown(publisher, mqttStatus, tracker, now(), signalName)
			return nil

		case <-deadline:
			log.Printf("run duration elapsed, shutting down")
			publishShutdown(publisher, mqttStatus, tracker, now(), "DEADLINE")
			return nil

		case <-tick:
			t := now()
			wasOn := ctl.IsOn()
			on, err := driver.Update(clk.Millis())
			if err != nil {
				log.Printf("led write error: %v", err)
				// Don't crash on output failure
			}

			if on != wasOn {
				event := blink.Event{
					Timestamp: t,
					Type:      blink.EventTypeFor(on),
					State:     blink.StateFor(on),
					AtMillis:  ctl.LastToggleTime(),
					Counts:    ctl.Counts(),
				}
				log.Printf("event: %s at %dms (on=%d off=%d)",
					event.Type, event.AtMillis, event.Counts.On, event.Counts.Off)
				if err := publisher.Publish(event); err != nil {
					log.Printf("publish error: %v", err)
					// Don't crash on publish failure
				}
				if hub != nil {
					if payload, err := mqtt.FormatPayload(event); err == nil {
						hub.Broadcast(payload)
					}
				}
			}

			// Update status tracker for HTTP/websocket consumers
			if tracker != nil {
				tracker.Update(blink.StateFor(on), ctl.Counts(), ctl.LastToggleTime())
				if mqttStatus != nil {
					tracker.SetMQTTConnected(mqttStatus.IsConnected())
				}
			}

			// Check for heartbeat
			if heartbeat > 0 && t.Sub(lastHeartbeat) >= heartbeat {
				lastHeartbeat = t
				hbEvent := mqtt.SystemEvent{
					Timestamp: t,
					Event:     "HEARTBEAT",
				}
				if tracker != nil {
					snap := tracker.Snapshot()
					hbEvent.RawPayload = status.FormatStatusEvent(snap, "HEARTBEAT", "")
					log.Printf("heartbeat: uptime=%v led=%s on=%d off=%d",
						snap.Uptime().Round(time.Second), snap.LED, snap.Counts.On, snap.Counts.Off)
				}
				if err := publisher.PublishSystem(hbEvent); err != nil {
					log.Printf("heartbeat publish error: %v", err)
				}
			}
		}
	}
}

// publishShutdown emits the retained SHUTDOWN event with a final status
// snapshot. Shared by the signal and deadline exits.
func publishShutdown(publisher mqtt.Publisher, mqttStatus mqtt.ConnectionStatus, tracker *status.Tracker, t time.Time, reason string) {
	event := mqtt.SystemEvent{
		Timestamp: t,
		Event:     "SHUTDOWN",
		Reason:    reason,
		Retained:  true,
	}
	if tracker != nil {
		if mqttStatus != nil {
			tracker.SetMQTTConnected(mqttStatus.IsConnected())
		}
		snap := tracker.Snapshot()
		event.RawPayload = status.FormatStatusEvent(snap, "SHUTDOWN", reason)
	}
	if err := publisher.PublishSystem(event); err != nil {
		log.Printf("failed to publish shutdown event: %v", err)
	} else {
		log.Printf("published shutdown event")
	}
}

// runConsole renders the blink cycle to the terminal instead of GPIO.
// Useful for demos and for checking timing behavior without hardware.
func runConsole(opts options, w io.Writer) error {
	duration := opts.duration
	if duration == 0 {
		duration = consoleDemoDuration
	}

	clk := timer.NewRealTimer()
	pin := led.NewConsolePin(w, clk)
	driver := blink.NewDriver(pin, uint32(opts.on.Milliseconds()), uint32(opts.off.Milliseconds()))

	printHeader(w, opts.on, opts.off, duration)

	// Start the blink clock at zero for readable timestamps
	clk.Reset()

	ticker := time.NewTicker(opts.tick)
	defer ticker.Stop()

	dt := time.NewTimer(duration)
	defer dt.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	return consoleLoop(driver, clk, w, ticker.C, dt.C, sigCh)
}

// consoleLoop drives the console renderer until the deadline passes or a
// signal arrives.
func consoleLoop(driver *blink.Driver, clk timer.Timer, w io.Writer, tick, deadline <-chan time.Time, sig <-chan os.Signal) error {
	ctl := driver.Controller()

	for {
		select {
		case s := <-sig:
			fmt.Fprintf(w, "\ninterrupted by %v\n", s)
			printSummary(w, ctl)
			return nil

		case <-deadline:
			printSummary(w, ctl)
			return nil

		case <-tick:
			if _, err := driver.Update(clk.Millis()); err != nil {
				return fmt.Errorf("console output: %w", err)
			}
		}
	}
}

func printHeader(w io.Writer, on, off time.Duration, duration time.Duration) {
	fmt.Fprintf(w, "\n=== led-blinker console demo ===\n\n")
	fmt.Fprintf(w, "Configuration:\n")
	fmt.Fprintf(w, "  ON duration:  %dms\n", on.Milliseconds())
	fmt.Fprintf(w, "  OFF duration: %dms\n", off.Milliseconds())
	fmt.Fprintf(w, "  Total cycle:  %dms\n", on.Milliseconds()+off.Milliseconds())
	fmt.Fprintf(w, "\nRunning for %v (Ctrl-C to stop)...\n\n", duration)
}

func printSummary(w io.Writer, ctl *blink.Controller) {
	counts := ctl.Counts()
	fmt.Fprintf(w, "\n=== Demo complete ===\n")
	fmt.Fprintf(w, "Toggles: %d on, %d off (last at %dms)\n", counts.On, counts.Off, ctl.LastToggleTime())
}
