package mpl3115a2

// Mode selects what the device folds its pressure measurement into.
type Mode byte

const (
	Altimeter Mode = iota // OUT_P holds altitude in meters
	Barometer             // OUT_P holds pressure in Pascals
)

func (m Mode) String() string {
	if m == Barometer {
		return "barometer"
	}
	return "altimeter"
}

// SystemMode is the device's observed operating state. The driver only ever
// reads it; the actual transition happens inside the part some time after the
// standby/one-shot bits are written.
type SystemMode byte

const (
	StandbyMode SystemMode = iota
	ActiveMode
)

func (m SystemMode) String() string {
	if m == ActiveMode {
		return "active"
	}
	return "standby"
}

// Config holds the options Init folds into CTRL_REG1 and PT_DATA_CFG.
// The zero value is not useful; start from DefaultConfig.
type Config struct {
	Standby               bool
	Oversample            int // 1, 2, 4, 8, 16, 32, 64 or 128
	Mode                  Mode
	EventOnNewTemperature bool
	EventOnNewPressure    bool
	DataReadyEventMode    bool
}

// DefaultConfig returns the configuration used for a fresh device: active
// altimeter at the highest oversample ratio with all event flags raised.
func DefaultConfig() Config {
	return Config{
		Standby:               false,
		Oversample:            128,
		Mode:                  Altimeter,
		EventOnNewTemperature: true,
		EventOnNewPressure:    true,
		DataReadyEventMode:    true,
	}
}

// ctrl1Byte composes the CTRL_REG1 value for cfg. With DefaultConfig this is
// 0x01|0x38|0x80 = 0xB9.
func (cfg Config) ctrl1Byte() (byte, error) {
	os, err := oversampleBits(cfg.Oversample)
	if err != nil {
		return 0, err
	}
	var b byte
	if !cfg.Standby {
		b |= ctrl1SBYB
	}
	b |= os << ctrl1OSShift
	if cfg.Mode == Altimeter {
		b |= ctrl1ALT
	}
	return b, nil
}

// ptDataCfgByte composes the PT_DATA_CFG value for cfg. With DefaultConfig
// this is 0x01|0x02|0x04 = 0x07.
func (cfg Config) ptDataCfgByte() byte {
	var b byte
	if cfg.EventOnNewTemperature {
		b |= ptCfgTDEFE
	}
	if cfg.EventOnNewPressure {
		b |= ptCfgPDEFE
	}
	if cfg.DataReadyEventMode {
		b |= ptCfgDREM
	}
	return b
}

// oversampleBits maps a ratio onto the 3-bit log2 encoding of the OS field.
func oversampleBits(ratio int) (byte, error) {
	for bits := byte(0); bits <= 7; bits++ {
		if 1<<bits == ratio {
			return bits, nil
		}
	}
	return 0, InvalidConfigurationError{Option: "oversample ratio", Value: ratio}
}

// Device is a handle to one MPL3115A2 behind a Conn. It holds no register
// state of its own; every accessor goes to the bus. The Conn is exclusively
// owned for the duration of each call (see Conn for the serialization
// contract) and is never closed by the driver.
type Device struct {
	conn Conn
}

// New verifies the identity of the device behind conn and returns a handle
// to it. The device is not configured; call Init.
func New(conn Conn) (*Device, error) {
	d := &Device{conn: conn}
	if err := d.VerifyIdentity(); err != nil {
		return nil, err
	}
	return d, nil
}

// VerifyIdentity reads WHO_AM_I and fails unless it holds exactly DeviceID.
func (d *Device) VerifyIdentity() error {
	v, err := d.readRegister(RegWhoAmI)
	if err != nil {
		return err
	}
	if v != DeviceID {
		return UnexpectedDeviceIDError{Actual: v}
	}
	return nil
}

// Init validates cfg and writes CTRL_REG1 followed by PT_DATA_CFG. Validation
// happens before any bus traffic, so invalid input never reaches the device.
// The two writes are not transactional: if the second fails the first has
// already taken effect, and re-running Init is the recovery path.
func (d *Device) Init(cfg Config) error {
	ctrl1, err := cfg.ctrl1Byte()
	if err != nil {
		return err
	}
	ptCfg := cfg.ptDataCfgByte()

	if err := d.writeRegister(RegCtrl1, ctrl1); err != nil {
		return err
	}
	return d.writeRegister(RegPTDataCfg, ptCfg)
}

// Altitude returns the current altitude in meters. Only meaningful while the
// device is in altimeter mode.
func (d *Device) Altitude() (float64, error) {
	raw, err := d.readRegisters(RegPressMSB, RegPressCSB, RegPressLSB)
	if err != nil {
		return 0, err
	}
	return qAltitude.decode(raw), nil
}

// Pressure returns the current pressure in Pascals. Only meaningful while
// the device is in barometer mode.
func (d *Device) Pressure() (float64, error) {
	raw, err := d.readRegisters(RegPressMSB, RegPressCSB, RegPressLSB)
	if err != nil {
		return 0, err
	}
	return qPressure.decode(raw), nil
}

// Temperature returns the current temperature in degrees Celsius.
func (d *Device) Temperature() (float64, error) {
	raw, err := d.readRegisters(RegTempMSB, RegTempLSB)
	if err != nil {
		return 0, err
	}
	return qTemperature.decode(raw), nil
}

// AltitudeDelta returns the altitude change in meters since the last read.
func (d *Device) AltitudeDelta() (float64, error) {
	raw, err := d.readRegisters(RegPressDeltaMSB, RegPressDeltaCSB, RegPressDeltaLSB)
	if err != nil {
		return 0, err
	}
	return qAltitude.decode(raw), nil
}

// PressureDelta returns the pressure change in Pascals since the last read.
func (d *Device) PressureDelta() (float64, error) {
	raw, err := d.readRegisters(RegPressDeltaMSB, RegPressDeltaCSB, RegPressDeltaLSB)
	if err != nil {
		return 0, err
	}
	return qPressureDelta.decode(raw), nil
}

// TemperatureDelta returns the temperature change in degrees Celsius since
// the last read.
func (d *Device) TemperatureDelta() (float64, error) {
	raw, err := d.readRegisters(RegTempDeltaMSB, RegTempDeltaLSB)
	if err != nil {
		return 0, err
	}
	return qTemperatureDelta.decode(raw), nil
}

// OversampleRatio returns the current oversample ratio, one of 1 through 128.
func (d *Device) OversampleRatio() (int, error) {
	v, err := d.readRegister(RegCtrl1)
	if err != nil {
		return 0, err
	}
	return 1 << ((v & ctrl1OSMask) >> ctrl1OSShift), nil
}

// SetOversampleRatio sets the oversample ratio, which must be a power of two
// between 1 and 128. Other fields of CTRL_REG1 are preserved.
func (d *Device) SetOversampleRatio(ratio int) error {
	os, err := oversampleBits(ratio)
	if err != nil {
		return err
	}
	return d.readModifyWrite(RegCtrl1, func(b byte) byte {
		return (b &^ ctrl1OSMask) | os<<ctrl1OSShift
	})
}

// Standby reports whether the standby bit of CTRL_REG1 is set.
func (d *Device) Standby() (bool, error) {
	v, err := d.readRegister(RegCtrl1)
	if err != nil {
		return false, err
	}
	return !getBool(v, 0), nil
}

// SetStandby moves the device between standby and active. The transition is
// observable afterwards through SystemMode; the part takes its own time.
func (d *Device) SetStandby(standby bool) error {
	return d.readModifyWrite(RegCtrl1, func(b byte) byte {
		return putBit(b, 0, !standby)
	})
}

// TriggerOneShot starts a single measurement cycle by raising the
// self-clearing OST bit. Intended for use while in standby.
func (d *Device) TriggerOneShot() error {
	return d.readModifyWrite(RegCtrl1, func(b byte) byte {
		return b | ctrl1OST
	})
}

// Reset raises the software reset bit. The part reboots and drops off the
// bus until its power-on sequence finishes, so the write itself may error.
func (d *Device) Reset() error {
	return d.writeRegister(RegCtrl1, ctrl1RST)
}

// SystemMode reports whether the device is currently in standby or active
// mode. Read-only: the driver observes the transition, it does not drive it.
func (d *Device) SystemMode() (SystemMode, error) {
	v, err := d.readRegister(RegSysMode)
	if err != nil {
		return StandbyMode, err
	}
	if getBool(v, 0) {
		return ActiveMode, nil
	}
	return StandbyMode, nil
}

// DataReadyStatus holds the DR_STATUS flags.
type DataReadyStatus struct {
	Ready                  bool // new pressure/altitude or temperature data
	PressureReady          bool
	TemperatureReady       bool
	Overwritten            bool // unread data was replaced
	PressureOverwritten    bool
	TemperatureOverwritten bool
}

// DataReady reads DR_STATUS.
func (d *Device) DataReady() (DataReadyStatus, error) {
	v, err := d.readRegister(RegDRStatus)
	if err != nil {
		return DataReadyStatus{}, err
	}
	return DataReadyStatus{
		Ready:                  v&drStatusPTDR != 0,
		PressureReady:          v&drStatusPDR != 0,
		TemperatureReady:       v&drStatusTDR != 0,
		Overwritten:            v&drStatusPTOW != 0,
		PressureOverwritten:    v&drStatusPOW != 0,
		TemperatureOverwritten: v&drStatusTOW != 0,
	}, nil
}

// TimeDelay returns the raw time-delay register, the time since an unread
// sample was overwritten while the FIFO was disabled.
func (d *Device) TimeDelay() (byte, error) {
	return d.readRegister(RegTimeDelay)
}
