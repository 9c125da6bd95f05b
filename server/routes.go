package server

import (
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"

	"github.com/maxwase/disasmd/disasm"
	"github.com/maxwase/disasmd/disasm/mos6502"
	"github.com/maxwase/disasmd/disasm/riscv"
	"github.com/maxwase/disasmd/disasm/x86"
)

// Endpoint paths, one per architecture. Separate endpoints leave room for
// conflicting or target specific options later.
const (
	MOS6502Endpoint = "/mos6502"
	X86Endpoint     = "/x86"
	RISCVEndpoint   = "/riscv"
)

// GenericError is the error response envelope.
type GenericError struct {
	Error string `json:"error"`
}

func (s *Server) registerRoutes() {
	s.router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	s.router.POST(MOS6502Endpoint, s.handleMOS6502)
	s.router.POST(X86Endpoint, s.handleX86)
	s.router.POST(RISCVEndpoint, s.handleRISCV)
}

func (s *Server) handleMOS6502(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	lines, err := mos6502.New().Disassemble(payload.Bytes, payload.options())
	if err != nil {
		abortDisasm(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (s *Server) handleX86(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	requested := payload.Syntax
	if requested == "" {
		requested = s.conf.DefaultSyntax
	}

	syntax := x86.SyntaxIntel
	if requested != "" {
		var err *disasm.Error[x86.Error]
		if syntax, err = x86.ParseSyntax(requested); err != nil {
			abortDisasm(c, err)
			return
		}
	}

	d, err := x86.New(syntax, payload.Width)
	if err != nil {
		abortDisasm(c, err)
		return
	}

	lines, err := d.Disassemble(payload.Bytes, payload.options())
	if err != nil {
		abortDisasm(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (s *Server) handleRISCV(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	d, err := riscv.New(payload.Width)
	if err != nil {
		abortDisasm(c, err)
		return
	}

	lines, err := d.Disassemble(payload.Bytes, payload.options())
	if err != nil {
		abortDisasm(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

func bindPayload(c *gin.Context) (Payload, bool) {
	var payload Payload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, GenericError{Error: err.Error()})
		return Payload{}, false
	}
	return payload, true
}

// abortDisasm maps a classified disassembler error onto an HTTP status and
// surfaces its description verbatim.
func abortDisasm[E disasm.ArchError](c *gin.Context, err *disasm.Error[E]) {
	log.WithField("path", c.FullPath()).WithError(err).Debug("disassembly failed")
	c.AbortWithStatusJSON(statusFor(err.Category()), GenericError{Error: err.Error()})
}

func statusFor(category disasm.Category) int {
	switch category {
	case disasm.CategoryNotImplemented:
		return http.StatusNotImplemented
	case disasm.CategoryBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
