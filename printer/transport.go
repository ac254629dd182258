package printer

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	logInternal "github.com/AlexStarov/ptraster-GoLang-lib/log"
)

type Transport interface {
	Write([]byte) (int, error)
	Read([]byte) (int, error)
	Close() error
}

// -------------------- RAW --------------------

// RawTransport passes bytes straight through. This is what port 9100 speaks:
// the job is blasted at the printer and nothing is read back.
type RawTransport struct {
	conn io.ReadWriteCloser
}

func (r *RawTransport) Write(b []byte) (int, error) { return r.conn.Write(b) }
func (r *RawTransport) Read(b []byte) (int, error)  { return r.conn.Read(b) }
func (r *RawTransport) Close() error                { return r.conn.Close() }

// -------------------- LPD --------------------

// LPDTransport buffers the raster job and submits it as one LPD data file on
// Close. Brother network printers expose their raw raster queue as
// BINARY_P1.
type LPDTransport struct {
	conn   net.Conn
	queue  string
	jobBuf bytes.Buffer
	closed bool
	mu     sync.Mutex
}

func NewLPDTransport(conn net.Conn, queue string) *LPDTransport {
	if queue == "" {
		queue = "BINARY_P1"
	}
	return &LPDTransport{
		conn:  conn,
		queue: queue,
	}
}

func (l *LPDTransport) Write(data []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return 0, io.ErrClosedPipe
	}
	return l.jobBuf.Write(data)
}

func (l *LPDTransport) Read(b []byte) (int, error) {
	return l.conn.Read(b)
}

func (l *LPDTransport) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	defer func() { l.closed = true }()

	logInternal.Debugf("LPDTransport.Close(): jobBuf.Len()=%d", l.jobBuf.Len())

	if l.jobBuf.Len() == 0 {
		return l.conn.Close()
	}

	if err := l.flushJob(); err != nil {
		logInternal.Debugf("flushJob() failed: %v", err)
		_ = l.conn.Close()
		return err
	}

	return l.conn.Close()
}

func (l *LPDTransport) flushJob() error {
	host, _ := os.Hostname()
	if host == "" {
		host = "localhost"
	}
	user := os.Getenv("USER")
	if user == "" {
		user = "GoLang"
	}

	jobID := int(time.Now().UnixNano() % 1000000)
	hostShort := host
	if i := strings.IndexByte(hostShort, '.'); i > 0 {
		hostShort = hostShort[:i]
	}
	jobName := fmt.Sprintf("ptraster-%d", jobID)
	cfName := fmt.Sprintf("cfA%03d%s", jobID%1000, hostShort)
	dfName := fmt.Sprintf("dfA%03d%s", jobID%1000, hostShort)

	// Minimal control file.
	// H - host, P - user, J - job name, N - original file name, U - data file to print
	control := fmt.Sprintf(
		"H%s\nP%s\nJ%s\nN%s\nU%s\n",
		host, user, jobName, dfName, dfName,
	)

	if err := requestPrintJob(l.conn, l.queue); err != nil {
		return fmt.Errorf("LPD: stage 1 failed: %w", err)
	}

	if err := sendControlFile(l.conn, l.queue, cfName, []byte(control)); err != nil {
		return fmt.Errorf("LPD: stage 2 failed: %w", err)
	}

	data := l.jobBuf.Bytes()
	logInternal.Debugf("LPD data file: %d bytes", len(data))
	if err := sendDataFile(l.conn, l.queue, dfName, data); err != nil {
		return fmt.Errorf("LPD: stage 3 failed: %w", err)
	}

	l.jobBuf.Reset()
	return nil
}

// -------------------- LPD helpers --------------------

func requestPrintJob(conn net.Conn, queue string) error {
	// \x02 + <queue>\n
	if err := writeAll(conn, []byte{0x02}); err != nil {
		return err
	}
	if err := writeAll(conn, []byte(queue+"\n")); err != nil {
		return err
	}
	return readAck(conn, "stage 1")
}

func sendControlFile(conn net.Conn, queue, cfName string, control []byte) error {
	// \x02 + "<size> <cfName>\n" + <control> + \x00
	if err := writeAll(conn, []byte{0x02}); err != nil {
		return err
	}
	header := []byte(strconv.Itoa(len(control)) + " " + cfName + "\n")
	if err := writeAll(conn, header); err != nil {
		return err
	}
	if err := writeAll(conn, control); err != nil {
		return err
	}
	if err := writeAll(conn, []byte{0x00}); err != nil {
		return err
	}
	return readAck(conn, "stage 2")
}

func sendDataFile(conn net.Conn, queue, dfName string, data []byte) error {
	// \x03 + "<size> <dfName>\n" + <data> + \x00
	if err := writeAll(conn, []byte{0x03}); err != nil {
		return err
	}
	header := []byte(strconv.Itoa(len(data)) + " " + dfName + "\n")
	if err := writeAll(conn, header); err != nil {
		return err
	}
	if err := writeAll(conn, data); err != nil {
		return err
	}
	if err := writeAll(conn, []byte{0x00}); err != nil {
		return err
	}
	return readAck(conn, "stage 3")
}

func readAck(conn net.Conn, stage string) error {
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	defer conn.SetReadDeadline(time.Time{})

	ack := make([]byte, 1)
	n, err := conn.Read(ack)
	if err != nil {
		return fmt.Errorf("reading ACK on %s: %w", stage, err)
	}
	if n != 1 || ack[0] != 0x00 {
		return fmt.Errorf("LPD request not acknowledged on %s", stage)
	}
	return nil
}

func writeAll(conn net.Conn, b []byte) error {
	sent := 0
	for sent < len(b) {
		n, err := conn.Write(b[sent:])
		if err != nil {
			return err
		}
		sent += n
	}
	return nil
}

// -------------------- helpers --------------------

type nopCloser struct {
	io.ReadWriter
}

func (n nopCloser) Close() error { return nil }
