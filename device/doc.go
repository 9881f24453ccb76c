// SPDX-License-Identifier: EPL-2.0

// Package device connects the decode pipeline to an audio output.
//
// A Device calls its Callback once per block of Spec.BlockFrames sample
// frames and plays what the callback wrote. Two backends exist:
//
//   - "oto": the sound card, through github.com/ebitengine/oto/v3. Built
//     unless the headless build tag is set.
//   - "headless": no sound card. A ticker fires the callback at the block
//     period and each block can be written to a Sink, such as a WAV
//     recorder.
//
// # Opening a Device
//
//	spec := device.Spec{SampleRate: 44100, Channels: 2, BlockFrames: 1152}
//	dev, err := device.Open(device.BackendOto, spec, pipe.Fill, device.Options{})
//	if err != nil {
//	    // Handle error
//	}
//	defer dev.Close()
//
//	dev.Start()
//
// # Callback Rules
//
// The callback runs on the audio goroutine. It must not block, must not
// allocate, and must always fill the whole block.
package device
