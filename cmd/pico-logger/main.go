//go:build rp2040

// cmd/pico-logger/main.go
//
// Raspberry Pi Pico light logger: BH1750 light sensor, DS3231 RTC and AT24C32
// EEPROM on I2C0, HD44780 16x2 display behind a PCF8574 backpack, 4x4 matrix
// keypad on GP6..GP13. UART0 mirrors the heartbeat for bench diagnostics.
package main

import (
	"context"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/at24cx"
	"tinygo.org/x/drivers/bh1750"
	"tinygo.org/x/drivers/ds3231"
	"tinygo.org/x/drivers/hd44780i2c"

	"luxlogger-go/bus"
	"luxlogger-go/drivers/keypad4x4"
	"luxlogger-go/errcode"
	"luxlogger-go/logstore"
	"luxlogger-go/mailbox"
	"luxlogger-go/services/config"
	"luxlogger-go/services/heartbeat"
	"luxlogger-go/services/sampler"
	"luxlogger-go/services/ui"
	"luxlogger-go/types"
)

const (
	lcdAddress = 0x27

	// AT24C32: 4 KiB, 32-byte pages.
	eepromSize     = 4096
	eepromPageSize = 32
)

// Keypad wiring: rows driven, columns sensed.
var (
	rowPins = [4]machine.Pin{machine.GP6, machine.GP7, machine.GP8, machine.GP9}
	colPins = [4]machine.Pin{machine.GP10, machine.GP11, machine.GP12, machine.GP13}
)

// eepromRegion adapts the AT24CX driver to the store's Region: the driver
// already does ReadAt/WriteAt, wiring adds the part's capacity.
type eepromRegion struct {
	dev *at24cx.Device
}

func (r *eepromRegion) Capacity() int { return eepromSize }

func (r *eepromRegion) ReadAt(p []byte, off int64) (int, error) {
	return r.dev.ReadAt(p, off)
}

func (r *eepromRegion) WriteAt(p []byte, off int64) (int, error) {
	return r.dev.WriteAt(p, off)
}

// rtcClock adapts the DS3231 driver to types.Clock.
type rtcClock struct {
	dev *ds3231.Device
}

func (c *rtcClock) Now() (types.DateTime, error) {
	t, err := c.dev.ReadTime()
	if err != nil {
		return types.DateTime{}, &errcode.E{C: errcode.NoClock, Op: "rtc.read", Err: err}
	}
	return types.DateTime{
		Year:   uint16(t.Year()),
		Month:  uint8(t.Month()),
		Day:    uint8(t.Day()),
		Hour:   uint8(t.Hour()),
		Minute: uint8(t.Minute()),
		Second: uint8(t.Second()),
	}, nil
}

func (c *rtcClock) Set(d types.DateTime) error {
	return c.dev.SetTime(time.Date(int(d.Year), time.Month(d.Month), int(d.Day),
		int(d.Hour), int(d.Minute), int(d.Second), 0, time.UTC))
}

// lcdDisplay adapts the HD44780 driver to types.Display.
type lcdDisplay struct {
	dev *hd44780i2c.Device
}

func (d *lcdDisplay) Clear() { d.dev.ClearDisplay() }

func (d *lcdDisplay) WriteAt(row, col uint8, text string) {
	d.dev.SetCursor(col, row)
	d.dev.Print([]byte(text))
}

// luxSensor adapts the BH1750 driver to types.LightSensor. The driver reports
// centi-lux as int32.
type luxSensor struct {
	dev *bh1750.Device
}

func (s *luxSensor) ReadLux() (float32, error) {
	if !s.dev.Connected() {
		return 0, errcode.NoSensor
	}
	return float32(s.dev.ReadIlluminance()) / 100, nil
}

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)
	println("Info: pico-logger boot")

	if err := machine.I2C0.Configure(machine.I2CConfig{
		Frequency: 400_000,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	}); err != nil {
		halt("i2c0 configure failed: " + err.Error())
	}

	// Keypad matrix.
	for _, p := range rowPins {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	for _, p := range colPins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
	keys := keypad4x4.New(
		[4]keypad4x4.RowPin{rowPins[0], rowPins[1], rowPins[2], rowPins[3]},
		[4]keypad4x4.ColPin{colPins[0], colPins[1], colPins[2], colPins[3]},
	)

	// Display.
	lcdDev := hd44780i2c.New(machine.I2C0, lcdAddress)
	if err := lcdDev.Configure(hd44780i2c.Config{Width: 16, Height: 2}); err != nil {
		halt("lcd configure failed: " + err.Error())
	}
	disp := &lcdDisplay{dev: &lcdDev}
	disp.Clear()
	disp.WriteAt(0, 0, "Booting...")

	// Clock. A dead RTC makes every record timestamp a lie, so it is fatal.
	rtcDev := ds3231.New(machine.I2C0)
	clock := &rtcClock{dev: &rtcDev}
	now, err := clock.Now()
	if err != nil {
		disp.WriteAt(1, 0, "Clock missing!")
		halt("rtc probe failed: " + err.Error())
	}
	if !rtcDev.IsRunning() {
		if err := rtcDev.SetRunning(true); err != nil {
			println("Warn: rtc oscillator start failed:", err.Error())
		}
	}
	if !rtcDev.IsTimeValid() || !now.Plausible() {
		// Battery was out; start counting from a known epoch.
		println("Warn: rtc time invalid, resetting to 2000-01-01")
		fallback := types.DateTime{Year: 2000, Month: 1, Day: 1}
		if err := clock.Set(fallback); err != nil {
			println("Error: rtc reset failed:", err.Error())
		}
	}

	// Light sensor.
	luxDev := bh1750.New(machine.I2C0)
	luxDev.Configure()
	if !luxDev.Connected() {
		// Not fatal: the sampler reports a degraded state until it answers.
		println("Warn: light sensor not responding")
	}
	sensor := &luxSensor{dev: &luxDev}

	// Log store on the EEPROM.
	eeDev := at24cx.New(machine.I2C0)
	eeDev.Configure(at24cx.Config{PageSize: eepromPageSize, EndRAMAddress: eepromSize})
	store, err := logstore.Open(&eepromRegion{dev: &eeDev})
	if err != nil {
		disp.WriteAt(1, 0, "Storage error!")
		halt("log store open failed: " + err.Error())
	}
	if store.Recovered() {
		println("Warn: log index was corrupt, store reset")
	}
	println("Info: log store ready,", store.Count(), "of", store.MaxLogs(), "slots used")

	// Diagnostic UART for the heartbeat mirror.
	uartx.UART0.Configure(uartx.UARTConfig{
		BaudRate: 115200,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})

	ctx := context.WithValue(context.Background(), config.CtxDeviceKey, "pico-logger")
	b := bus.NewBus(4)

	config.NewService().Start(ctx, b.NewConnection("config"))

	mbox := mailbox.New[float32]()
	if err := sampler.New(sensor, mbox).Start(ctx, b.NewConnection("sampler")); err != nil {
		halt("sampler start failed: " + err.Error())
	}

	hb := heartbeat.New(clock)
	hb.Sink = uartx.UART0
	if err := hb.Start(ctx, b.NewConnection("heartbeat")); err != nil {
		halt("heartbeat start failed: " + err.Error())
	}

	// The UI owns the main goroutine.
	ui.New(ui.Config{}, store, mbox, keys, disp, clock).Run(ctx, b.NewConnection("ui"))
}

// halt reports a fatal condition forever; the watchdog is not armed, so the
// operator sees the message instead of a silent reboot loop.
func halt(msg string) {
	for {
		println("Fatal:", msg)
		time.Sleep(5 * time.Second)
	}
}
