package database

import (
	"fmt"
	stringx "strings"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/eights/consts"
)

type Player struct {
	ID    int64  `json:"id"`
	IP    string `json:"ip"`
	Name  string `json:"name"`
	Score int64  `json:"score"`

	conn      *network.Conn
	data      chan *protocol.Packet
	writeLock sync.Mutex
	readLock  sync.RWMutex
	read      bool
	state     consts.StateID
	online    bool
}

func (p *Player) Write(bytes []byte) error {
	p.writeLock.Lock()
	defer p.writeLock.Unlock()
	return p.conn.Write(protocol.Packet{
		Body: bytes,
	})
}

func (p *Player) Offline() {
	_ = p.conn.Close()
	p.readLock.Lock()
	p.online = false
	p.read = false
	close(p.data)
	p.readLock.Unlock()
	if session := GetEightsGame(p.ID); session != nil {
		session.Close()
		DeleteEightsGame(p.ID)
	}
	log.Infof("player %s offline\n", p)
}

// Close drops the connection, Listening then returns and the player goes offline.
func (p *Player) Close() {
	_ = p.conn.Close()
}

func (p *Player) Listening() error {
	for {
		pack, err := p.conn.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		p.readLock.RLock()
		if p.read {
			p.data <- pack
		}
		p.readLock.RUnlock()
	}
}

func (p *Player) WriteString(data string) error {
	return p.Write([]byte(data))
}

func (p *Player) WriteObject(data interface{}) error {
	return p.Write(json.Marshal(data))
}

func (p *Player) WriteError(err error) error {
	if err == consts.ErrorsExist {
		return err
	}
	if e, ok := err.(consts.Error); ok && e.Exit {
		_ = p.WriteString(err.Error() + "\n")
		return err
	}
	return p.WriteString(err.Error() + "\n")
}

func (p *Player) AskForPacket(timeout ...time.Duration) (*protocol.Packet, error) {
	p.StartTransaction()
	defer p.StopTransaction()
	var packet *protocol.Packet
	if len(timeout) > 0 {
		select {
		case packet = <-p.data:
		case <-time.After(timeout[0]):
			return nil, consts.ErrorsTimeout
		}
	} else {
		packet = <-p.data
	}
	if packet == nil {
		return nil, consts.ErrorsChanClosed
	}
	single := stringx.ToLower(stringx.TrimSpace(packet.String()))
	if single == consts.CommandExit {
		return nil, consts.ErrorsExist
	}
	return packet, nil
}

func (p *Player) AskForString(timeout ...time.Duration) (string, error) {
	packet, err := p.AskForPacket(timeout...)
	if err != nil {
		return "", err
	}
	return stringx.TrimSpace(packet.String()), nil
}

func (p *Player) StartTransaction() {
	p.readLock.Lock()
	p.read = p.online
	p.readLock.Unlock()
	_ = p.WriteString(consts.IsStart)
}

func (p *Player) StopTransaction() {
	p.readLock.Lock()
	p.read = false
	p.readLock.Unlock()
	_ = p.WriteString(consts.IsStop)
}

func (p *Player) State(s consts.StateID) {
	p.state = s
}

func (p *Player) GetState() consts.StateID {
	return p.state
}

func (p *Player) Conn(conn *network.Conn) {
	p.conn = conn
	p.data = make(chan *protocol.Packet, 8)
	p.online = true
}

func (p *Player) String() string {
	return fmt.Sprintf("%s[%d]", p.Name, p.ID)
}
