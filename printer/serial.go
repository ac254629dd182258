package printer

import (
	"fmt"
	"time"

	"go.bug.st/serial"

	logInternal "github.com/AlexStarov/ptraster-GoLang-lib/log"
)

// NewSerialPrinter opens a printer on a serial port (COM or /dev/cu.usbmodem*).
func NewSerialPrinter(portName string, baudRate int) (*Printer, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}
	logInternal.Debugf("available serial ports: %v", ports)

	if !contains(ports, portName) {
		return nil, fmt.Errorf("serial port %s not found", portName)
	}

	mode := &serial.Mode{
		BaudRate: baudRate,
		Parity:   serial.NoParity,
		DataBits: 8,
		StopBits: serial.OneStopBit,
	}

	serialPort, err := serial.Open(portName, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", portName, err)
	}
	serialPort.SetReadTimeout(100 * time.Millisecond)
	logInternal.Debugf("serial port %s open at %d baud", portName, baudRate)

	printer, err := NewPrinter(serialPort)
	if err != nil {
		serialPort.Close()
		return nil, err
	}
	return printer, nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
