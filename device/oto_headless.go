// SPDX-License-Identifier: EPL-2.0

//go:build headless

package device

// Builds with the headless tag carry no sound card support.
func openOto(Spec, Callback, Options) (Device, error) {
	return nil, ErrBackendUnavailable
}
