package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-jdwp/jdwpwire/protocol/jdwp"
)

var dumpCmd = &cobra.Command{
	Use:   "dump <captured-bytes-file>",
	Short: "Classify and summarize a captured JDWP byte stream",
	Long: `dump reads a file holding a captured JDWP byte stream: an
optional 14-byte handshake followed by zero or more framed
command/reply/event packets, back to back, with no other framing
between them. Each packet is classified and printed as one line.`,
	Args: cobra.ExactArgs(1),
	Run:  runDump,
}

func runDump(_ *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		log.Fatalf("jdwpdump: %v", err)
	}

	fmt.Println(headerStyle.Render("JDWP STREAM DUMP"))

	offset := 0
	if len(data) >= len(jdwp.Handshake) && jdwp.DecodeHandshake(data[:len(jdwp.Handshake)]) {
		fmt.Printf("%s  %s\n", kindLabel("EVENT"), mutedStyle.Render("handshake \"JDWP-Handshake\""))
		offset = len(jdwp.Handshake)
	}

	n := 0
	for offset+jdwp.HeaderSize <= len(data) {
		length, err := jdwp.ReadLength(data[offset:])
		if err != nil {
			fmt.Println(errorStyle.Render(fmt.Sprintf("malformed packet at offset %d: %v", offset, err)))
			return
		}
		if int(length) < jdwp.HeaderSize || offset+int(length) > len(data) {
			fmt.Println(errorStyle.Render(fmt.Sprintf("malformed packet at offset %d: declared length %d out of range", offset, length)))
			return
		}

		pkt := data[offset : offset+int(length)]
		printPacket(n, pkt)
		offset += int(length)
		n++
	}

	if offset != len(data) {
		fmt.Println(mutedStyle.Render(fmt.Sprintf("%d trailing byte(s) after the last complete packet", len(data)-offset)))
	}
	fmt.Printf("%s\n", mutedStyle.Render(fmt.Sprintf("%d packet(s)", n)))
}

func printPacket(index int, pkt []byte) {
	id, _ := jdwp.ReadID(pkt)
	length, _ := jdwp.ReadLength(pkt)

	switch {
	case jdwp.IsEvent(pkt):
		cmdID, _ := jdwp.ReadCommandID(pkt)
		fmt.Printf("%3d  %s  id=%-10d len=%-6d %s\n",
			index, kindLabel("EVENT"), id, length, mutedStyle.Render(fmt.Sprintf("cmd=%d", cmdID)))
	case jdwp.IsReply(pkt):
		code, _ := jdwp.ReadErrorCode(pkt)
		if code != jdwp.ErrNone {
			fmt.Printf("%3d  %s  id=%-10d len=%-6d %s\n",
				index, kindLabel("ERROR"), id, length,
				errorStyle.Render(fmt.Sprintf("code=%d (%s)", code, jdwp.ErrorText(code))))
		} else {
			fmt.Printf("%3d  %s  id=%-10d len=%-6d\n", index, kindLabel("REPLY"), id, length)
		}
	default:
		cmdSet, _ := jdwp.ReadCommandSet(pkt)
		cmdID, _ := jdwp.ReadCommandID(pkt)
		fmt.Printf("%3d  %s  id=%-10d len=%-6d %s\n",
			index, kindLabel("COMMAND"), id, length,
			mutedStyle.Render(fmt.Sprintf("set=%d cmd=%d", cmdSet, cmdID)))
	}
}
