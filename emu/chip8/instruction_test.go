package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode uint16
		want   Op
	}{
		{0x00E0, OpCls},
		{0x00EE, OpRet},
		{0x1234, OpJp},
		{0x2456, OpCall},
		{0x3A7F, OpSeNN},
		{0x4A7F, OpSneNN},
		{0x5AB0, OpSeVy},
		{0x6C42, OpLdNN},
		{0x7C01, OpAddNN},
		{0x8AB0, OpLdVy},
		{0x8AB1, OpOr},
		{0x8AB2, OpAnd},
		{0x8AB3, OpXor},
		{0x8AB4, OpAddVy},
		{0x8AB5, OpSubVy},
		{0x8AB6, OpShr},
		{0x8AB7, OpSubn},
		{0x8ABE, OpShl},
		{0x9AB0, OpSneVy},
		{0xA123, OpLdI},
		{0xB123, OpJpV0},
		{0xC07F, OpRnd},
		{0xD125, OpDrw},
		{0xE29E, OpSkp},
		{0xE2A1, OpSknp},
		{0xF307, OpLdDT},
		{0xF30A, OpLdK},
		{0xF315, OpStDT},
		{0xF318, OpStST},
		{0xF31E, OpAddI},
		{0xF329, OpLdF},
		{0xF333, OpBCD},
		{0xF355, OpStV},
		{0xF365, OpLdV},
	}

	for _, tt := range tests {
		t.Run(Instruction{Op: tt.want}.String(), func(t *testing.T) {
			in, err := Decode(tt.opcode)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, in.Op)
			assert.Equal(t, tt.opcode, in.Raw)
		})
	}
}

func TestDecodeFields(t *testing.T) {
	in, err := Decode(0xDAB5)
	assert.NoError(t, err)

	assert.Equal(t, uint8(0xA), in.X)
	assert.Equal(t, uint8(0xB), in.Y)
	assert.Equal(t, uint8(0x5), in.N)
	assert.Equal(t, uint8(0xB5), in.NN)
	assert.Equal(t, uint16(0xAB5), in.NNN)
}

func TestDecodeUnknown(t *testing.T) {
	unknown := []uint16{
		0x0000, // machine-code call, unsupported
		0x0123,
		0x5AB1, // 5xy_ only defined for a zero low nibble
		0x8AB8,
		0x8ABF,
		0x9AB1,
		0xE200,
		0xE2FF,
		0xF300,
		0xF3FF,
	}

	for _, opcode := range unknown {
		_, err := Decode(opcode)
		assert.Error(t, err)

		var unknownErr UnknownOpcodeError
		assert.True(t, errors.As(err, &unknownErr))
		assert.Equal(t, opcode, unknownErr.Opcode)
	}
}
